package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferedLogger(level string) (*logrus.Logger, *bytes.Buffer) {
	logger := SetupLogging(level)
	buf := &bytes.Buffer{}
	logger.Out = buf
	return logger, buf
}

func TestSetupLogging_Level(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, SetupLogging("debug").Level)
	assert.Equal(t, logrus.InfoLevel, SetupLogging("nonsense").Level)
}

func TestGetLogData(t *testing.T) {
	assert.Nil(t, GetLogData(context.Background()))

	logData := NewLogData(logrus.New())
	ctx := WithLogData(context.Background(), logData)
	assert.Same(t, logData, GetLogData(ctx))
}

func TestLogData_Log(t *testing.T) {
	logger, buf := bufferedLogger("info")
	logData := NewLogData(logger)

	logData.AddData("transactionCount", 3)
	logData.AddTiming("listMs")()
	logData.Log().Info("Service.List.Complete")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["loglevel"])
	assert.Equal(t, "Service.List.Complete", line["msg"])
	assert.Equal(t, float64(3), line["transactionCount"])
	assert.Contains(t, line, "listMs")
}

func TestLoggingWrapper(t *testing.T) {
	logger, buf := bufferedLogger("info")

	var seen *LogData
	handler := LoggingWrapper("Test", logger, func(w http.ResponseWriter, req *http.Request, logData *LogData) error {
		seen = GetLogData(req.Context())
		assert.Same(t, logData, seen)
		w.WriteHeader(http.StatusTeapot)
		return errors.New("boom")
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.NotNil(t, seen)
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Contains(t, buf.String(), "Handler.Test.Error")
	assert.Contains(t, buf.String(), "boom")
}
