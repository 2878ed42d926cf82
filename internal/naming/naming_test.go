package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCasing(t *testing.T) {
	tests := []struct {
		in, pascal, camel string
	}{
		{"user_name", "UserName", "userName"},
		{"user-name", "UserName", "userName"},
		{"userID", "UserID", "userID"},
		{"Widget", "Widget", "widget"},
		{"http server 2", "HttpServer2", "httpServer2"},
		{"élan_vital", "ÉlanVital", "élanVital"},
		{"", "", ""},
		{"__", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.pascal, Pascal(tt.in))
			assert.Equal(t, tt.camel, Camel(tt.in))
		})
	}
}

func TestWords(t *testing.T) {
	assert.Equal(t, []string{"a", "b2", "c"}, Words("a.b2--c"))
	assert.Empty(t, Words("._-"))
}
