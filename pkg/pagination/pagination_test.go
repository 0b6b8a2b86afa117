// Copyright (c) 2026 Fornello. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/fornello/pkg/pagination"
)

/*
TestFromRequest_Clamping verifies query parsing and the clamping rules.
*/
func TestFromRequest_Clamping(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, pagination.DefaultLimit},
		{"explicit", "?page=3&limit=25", 3, 25},
		{"zero_page", "?page=0", 1, pagination.DefaultLimit},
		{"negative_page", "?page=-2", 1, pagination.DefaultLimit},
		{"zero_limit", "?limit=0", 1, pagination.DefaultLimit},
		{"excessive_limit", "?limit=5000", 1, pagination.DefaultLimit},
		{"garbage", "?page=abc&limit=xyz", 1, pagination.DefaultLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/franchise"+tt.query, nil)
			params := pagination.FromRequest(request)

			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}

/*
TestOffset_Derivation checks SQL offsets across page boundaries.
*/
func TestOffset_Derivation(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, pagination.Params{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 50, pagination.Params{Page: 3, Limit: 25}.Offset())
}

/*
TestTrim_MoreDetection checks the limit+1 overflow convention.
*/
func TestTrim_MoreDetection(t *testing.T) {
	params := pagination.Params{Page: 1, Limit: 10}

	assert.False(t, params.Trim(9))
	assert.False(t, params.Trim(10))
	assert.True(t, params.Trim(11))
}
