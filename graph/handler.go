package graph

import (
	"net/http"

	"stayhaven/utils"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"go.uber.org/zap"
)

type graphRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler serves the GraphQL endpoint over POST.
func Handler(schema graphql.Schema, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req graphRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
			return
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			OperationName:  req.OperationName,
			VariableValues: req.Variables,
			Context:        c.Request.Context(),
		})

		if len(result.Errors) > 0 {
			logger.Debug("graphql request returned errors",
				zap.String("operation", req.OperationName),
				zap.Any("errors", result.Errors),
			)
		}

		c.JSON(http.StatusOK, result)
	}
}
