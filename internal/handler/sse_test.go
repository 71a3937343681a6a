package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestWriteEventSkipsUnmarshalablePayload(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	resp := echo.NewResponse(rec, e)

	// A payload json cannot encode is dropped without writing a partial
	// event; the stream stays usable.
	writeEvent(resp, "done", echo.Map{"bad": make(chan int)})
	assert.Empty(t, rec.Body.String())

	writeEvent(resp, "", echo.Map{"text": "ok"})
	assert.Equal(t, "data: {\"text\":\"ok\"}\n\n", rec.Body.String())
}
