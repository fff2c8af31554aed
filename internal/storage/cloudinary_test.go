package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPreexistingAsset(t *testing.T) {
	now := time.Now()

	cases := map[string]struct {
		createdAt time.Time
		want      bool
	}{
		"fresh upload":                 {createdAt: now, want: false},
		"seconds of processing delay":  {createdAt: now.Add(-5 * time.Second), want: false},
		"remote clock slightly ahead":  {createdAt: now.Add(20 * time.Second), want: false},
		"asset stored an hour earlier": {createdAt: now.Add(-time.Hour), want: true},
		"asset stored a day earlier":   {createdAt: now.AddDate(0, 0, -1), want: true},
		"no created_at in response":    {createdAt: time.Time{}, want: false},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, preexistingAsset(now, tc.createdAt))
		})
	}
}

func TestPublicID(t *testing.T) {
	withFolder := &CloudinaryStore{folder: "portfolio"}
	assert.Equal(t, "portfolio/7/7-1700000000000.png", withFolder.publicID("7/7-1700000000000.png"))

	bare := &CloudinaryStore{}
	assert.Equal(t, "7/7-1700000000000.png", bare.publicID("7/7-1700000000000.png"))
}
