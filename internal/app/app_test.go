package app

import (
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/monjurmorshed793/banbeis-blog/internal/middleware"
)

func TestValidateGinMode(t *testing.T) {
	for _, mode := range []string{gin.DebugMode, gin.ReleaseMode, gin.TestMode} {
		if err := validateGinMode(mode); err != nil {
			t.Errorf("validateGinMode(%q) = %v, want nil", mode, err)
		}
	}
	if err := validateGinMode("production"); err == nil {
		t.Error("expected error for an unknown mode")
	}
}

func TestResolveCORSConfig(t *testing.T) {
	configured := []string{"https://admin.example.com"}

	tests := []struct {
		name    string
		mode    string
		origins []string
		want    []string
	}{
		{name: "configured allowlist wins", mode: gin.ReleaseMode, origins: configured, want: configured},
		{name: "release without allowlist denies", mode: gin.ReleaseMode, want: []string{}},
		{name: "debug without allowlist keeps defaults", mode: gin.DebugMode, want: middleware.DefaultCORSConfig().AllowOrigins},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveCORSConfig(tt.mode, tt.origins)
			if !reflect.DeepEqual(got.AllowOrigins, tt.want) {
				t.Errorf("AllowOrigins = %v, want %v", got.AllowOrigins, tt.want)
			}
		})
	}
}
