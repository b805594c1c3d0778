package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(logrus.InfoLevel, &buf)

	LogError(l, "job", "Create", logrus.Fields{"job_id": "j-1"}, errors.New("boom"))

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected json log line, got %q", buf.String())
	}
	if line["module"] != "job" || line["funcName"] != "Create" || line["job_id"] != "j-1" || line["msg"] != "boom" {
		t.Fatalf("unexpected log line: %v", line)
	}
}

func TestGinLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	l := NewWithWriter(logrus.InfoLevel, &buf)

	r := gin.New()
	r.Use(GinLogger(l))
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected json log line, got %q", buf.String())
	}
	if line["level"] != "warning" || line["path"] != "/missing" {
		t.Fatalf("unexpected log line: %v", line)
	}
}
