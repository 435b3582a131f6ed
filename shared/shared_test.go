package shared_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"lodgedesk/shared"
	cacheMocks "lodgedesk/shared/cache/mocks"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []string
		expected string
	}{
		{name: "prefix only", prefix: "customer:all", expected: "customer:all"},
		{name: "one part", prefix: "session", parts: []string{"abc"}, expected: "session:abc"},
		{name: "several parts", prefix: "limiter", parts: []string{"10.0.0.1", "curl"}, expected: "limiter:10.0.0.1:curl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.BuildCacheKey(tt.prefix, tt.parts...); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Clear(gomock.Any(), "customer:all*").Return(nil)

	shared.InvalidateCaches(context.Background(), mockCache, "customer:all")
}

func TestInvalidateCaches_ClearFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Clear(gomock.Any(), "customer:all*").Return(errors.New("redis down"))

	// A failed invalidation is logged, never propagated.
	shared.InvalidateCaches(context.Background(), mockCache, "customer:all")
}
