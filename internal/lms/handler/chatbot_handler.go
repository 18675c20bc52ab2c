package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dothithuanhtlu/lms-sub000/internal/lms/chatbot"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/model"
)

type ChatbotHandler struct {
	Assistant chatbot.Assistant
}

func NewChatbotHandler(a chatbot.Assistant) *ChatbotHandler {
	return &ChatbotHandler{Assistant: a}
}

// Ask handles GET /chatbot/:message
func (h *ChatbotHandler) Ask(c echo.Context) error {
	message := c.Param("message")
	if message == "" {
		code, body := badRequest("Message is required")
		return c.JSON(code, body)
	}

	reply, err := h.Assistant.Ask(c.Request().Context(), message, chatbot.SessionID(message))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Assistant replied",
		map[string]string{"reply": reply}))
}
