package handlers

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/swaggo/swag"
)

// @title Magento Commerce Actions
// @version 1.0
// @description Cart, customer, order and product actions backed by Magento REST

// @host localhost:8081
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Customer token. Type "Bearer" followed by a space and the token.

var registerDocs sync.Once

// RegisterDocs publishes the route table as the swagger document served
// under /swagger/doc.json.
func RegisterDocs() {
	registerDocs.Do(func() {
		swag.Register(swag.Name, routeDocs{})
	})
}

type routeDocs struct{}

// ReadDoc implements swag.Swagger
func (routeDocs) ReadDoc() string {
	doc, err := json.Marshal(buildDocs(Routes))
	if err != nil {
		return "{}"
	}
	return string(doc)
}

func buildDocs(routes []Route) map[string]interface{} {
	paths := make(map[string]map[string]interface{})
	for _, route := range routes {
		ops, ok := paths[route.Path]
		if !ok {
			ops = make(map[string]interface{})
			paths[route.Path] = ops
		}

		var parameters []map[string]interface{}
		for _, segment := range splitPath(route.Path) {
			if name, ok := paramName(segment); ok {
				parameters = append(parameters, map[string]interface{}{
					"name":     name,
					"in":       "path",
					"required": true,
					"type":     "string",
				})
			}
		}
		if route.Method != "GET" && route.Method != "DELETE" {
			parameters = append(parameters, map[string]interface{}{
				"name":     "body",
				"in":       "body",
				"required": false,
				"schema":   map[string]interface{}{"type": "object"},
			})
		}

		ops[strings.ToLower(route.Method)] = map[string]interface{}{
			"operationId": route.Action,
			"tags":        []string{route.Domain},
			"produces":    []string{"application/json"},
			"parameters":  parameters,
			"security":    []map[string][]string{{"BearerAuth": {}}},
			"responses": map[string]interface{}{
				"default": map[string]interface{}{"description": "Action envelope rendered as HTTP"},
			},
		}
	}

	return map[string]interface{}{
		"swagger": "2.0",
		"info": map[string]interface{}{
			"title":       "Magento Commerce Actions",
			"description": "Cart, customer, order and product actions backed by Magento REST",
			"version":     "1.0",
		},
		"basePath": "/",
		"paths":    paths,
		"securityDefinitions": map[string]interface{}{
			"BearerAuth": map[string]interface{}{"type": "apiKey", "in": "header", "name": "Authorization"},
		},
	}
}
