package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ironsheep/color-tools-mcp/internal/config"
	"github.com/sirupsen/logrus"
)

func TestConfigure_Level(t *testing.T) {
	tests := []struct {
		level string
		want  logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"warn", logrus.WarnLevel},
		{"bogus", logrus.InfoLevel},
		{"", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l := logrus.New()
			configure(l, &bytes.Buffer{}, config.Config{LogLevel: tt.level})
			if l.GetLevel() != tt.want {
				t.Errorf("level: got %v, want %v", l.GetLevel(), tt.want)
			}
		})
	}
}

func TestConfigure_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	configure(l, &buf, config.Config{LogLevel: "info", LogJSON: true})

	l.WithField("tool", "color_convert").Info("called")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if entry["tool"] != "color_convert" || entry["msg"] != "called" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestConfigure_Text(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	configure(l, &buf, config.Config{LogLevel: "info"})

	l.Debug("hidden")
	l.Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug entry logged at info level: %s", out)
	}
	if !strings.Contains(out, "msg=shown") {
		t.Errorf("missing info entry: %s", out)
	}
}
