package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/segmentio/encoding/json"

	"github.com/THPTUHA/todoweb/pkg/todo"
)

const todosAllow = "GET, HEAD, POST"

// Todos answers every method on /api/todos.
func (ctr *Controller) Todos(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodGet, http.MethodHead:
		ctr.ListTodos(c)
	case http.MethodPost:
		ctr.CreateTodo(c)
	default:
		c.Header("Allow", todosAllow)
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"error": "method not allowed",
		})
	}
}

func (ctr *Controller) ListTodos(c *gin.Context) {
	body, err := json.Marshal(todo.Fixed())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}

// CreateTodo is reserved. The body is never read.
func (ctr *Controller) CreateTodo(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{
		"error": "not implemented",
	})
}
