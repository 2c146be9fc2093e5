package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func paramsFor(t *testing.T, query string) Params {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return Parse(c)
}

func TestParseDefaults(t *testing.T) {
	p := paramsFor(t, "")
	if p.Page != DefaultPage || p.Limit != DefaultLimit || p.Offset != 0 {
		t.Errorf("defaults = %+v", p)
	}
}

func TestParseClampsLimit(t *testing.T) {
	if p := paramsFor(t, "limit=9999"); p.Limit != MaxLimit {
		t.Errorf("limit = %d, want %d", p.Limit, MaxLimit)
	}
	if p := paramsFor(t, "limit=0"); p.Limit != DefaultLimit {
		t.Errorf("limit = %d, want default", p.Limit)
	}
	if p := paramsFor(t, "page=-3"); p.Page != DefaultPage {
		t.Errorf("page = %d, want default", p.Page)
	}
}

func TestParseOffset(t *testing.T) {
	p := paramsFor(t, "page=3&limit=10")
	if p.Offset != 20 {
		t.Errorf("offset = %d, want 20", p.Offset)
	}
}
