package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	gql "github.com/graphql-go/graphql"
)

// graphqlRequest is the standard POST body of a GraphQL call.
type graphqlRequest struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

type GraphQLHandler struct {
	schema gql.Schema
}

func NewGraphQLHandler(schema gql.Schema) *GraphQLHandler {
	return &GraphQLHandler{
		schema: schema,
	}
}

// Handle executes a GraphQL request. Operation failures ride inside the
// GraphQL response envelope, so the HTTP status is 200 for anything
// that parsed as a request at all.
func (h *GraphQLHandler) Handle(c *gin.Context) {
	var req graphqlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := gql.Do(gql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        c.Request.Context(),
	})

	c.JSON(http.StatusOK, result)
}
