package agg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitRecord(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantKey   string
		wantValue string
		wantOK    bool
	}{
		{name: "simple", line: "CityA;23.4", wantKey: "CityA", wantValue: "23.4", wantOK: true},
		{name: "negative value", line: "B;-5.0", wantKey: "B", wantValue: "-5.0", wantOK: true},
		{name: "empty key", line: ";7", wantKey: "", wantValue: "7", wantOK: true},
		{name: "splits at first delimiter", line: "a;1;2", wantKey: "a", wantValue: "1;2", wantOK: true},
		{name: "no delimiter", line: "malformed", wantOK: false},
		{name: "empty line", line: "", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, value, ok := splitRecord([]byte(tt.line))
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantKey, string(key))
				assert.Equal(t, tt.wantValue, string(value))
			}
		})
	}
}
