package models

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoles(t *testing.T) {
	roles := NewRoles("editor", "", "admin", "admin")

	assert.Len(t, roles, 2)
	assert.True(t, roles.Has("admin"))
	assert.True(t, roles.Has("editor"))
	assert.False(t, roles.Has(""))
	assert.Equal(t, []string{"admin", "editor"}, roles.List())

	var nilRoles Roles
	assert.False(t, nilRoles.Has("admin"))
	assert.Empty(t, nilRoles.List())
}

func TestRoles_JSON(t *testing.T) {
	data, err := json.Marshal(Principal{ID: "1", DisplayName: "Test User", Roles: NewRoles("editor", "admin")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","name":"Test User","roles":["admin","editor"]}`, string(data))

	var p Principal
	require.NoError(t, json.Unmarshal(data, &p))
	assert.True(t, p.HasRole("admin"))
	assert.True(t, p.HasRole("editor"))
}

func TestClaims_Principal(t *testing.T) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "admin"},
		Role:             "admin",
	}

	p := claims.Principal()
	assert.Equal(t, "admin", p.ID)
	assert.Equal(t, "admin", p.DisplayName)
	assert.Equal(t, NewRoles("admin"), p.Roles)

	claims.Role = ""
	assert.Empty(t, claims.Principal().Roles)
}

func TestCachedResponse_Clone(t *testing.T) {
	original := CachedResponse{
		Status:   http.StatusOK,
		Header:   http.Header{"Content-Type": {"application/json"}},
		Body:     []byte(`{"a":1}`),
		StoredAt: time.Unix(100, 0),
	}

	clone := original.Clone()
	assert.Equal(t, original, clone)

	clone.Body[0] = 'X'
	clone.Header.Set("Content-Type", "text/plain")

	assert.Equal(t, []byte(`{"a":1}`), original.Body)
	assert.Equal(t, "application/json", original.Header.Get("Content-Type"))
}

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "abc")
	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc", info.BuildCommit())

	var buf bytes.Buffer
	log := zerolog.New(&buf)
	log.Info().Object("build", info).Send()
	assert.JSONEq(t, `{"level":"info","build":{"version":"1.0.0","date":"N/A","commit":"abc"}}`, buf.String())
}

func TestPost_IDEncodedAsString(t *testing.T) {
	data, err := json.Marshal(PostResponse{Post: Post{ID: 42}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"post":{"id":"42"}}`, string(data))
}
