package utils

import (
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	c := GetCache()
	c.Set("k", "v", time.Minute)
	if got := c.Get("k"); got != "v" {
		t.Errorf("Get = %v, want v", got)
	}

	c.Delete("k")
	if got := c.Get("k"); got != nil {
		t.Errorf("Get after Delete = %v, want nil", got)
	}
}

func TestCacheExpiry(t *testing.T) {
	c := GetCache()
	c.Set("short", "v", -time.Second) // already expired
	if got := c.Get("short"); got != nil {
		t.Errorf("expired entry still served: %v", got)
	}
}

func TestCacheDeletePrefix(t *testing.T) {
	c := GetCache()
	c.Set("feed:page:1", 1, time.Minute)
	c.Set("feed:page:2", 2, time.Minute)
	c.Set("other", 3, time.Minute)

	c.DeletePrefix("feed:page:")

	if c.Get("feed:page:1") != nil || c.Get("feed:page:2") != nil {
		t.Error("DeletePrefix left feed pages behind")
	}
	if c.Get("other") == nil {
		t.Error("DeletePrefix removed an unrelated key")
	}
}
