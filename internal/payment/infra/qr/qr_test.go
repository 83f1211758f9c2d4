package qr

import (
	"bytes"
	"context"
	"encoding/base64"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const uri = "upi://pay?pa=shrinisha2005%40okabi&pn=ZYNO+Store&am=1198&cu=INR"

func TestChartRendererEmbedsURI(t *testing.T) {
	got, err := NewChartRenderer().Render(context.Background(), uri)
	require.NoError(t, err)

	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "chart.googleapis.com", u.Host)
	assert.Equal(t, "200x200", u.Query().Get("chs"))
	assert.Equal(t, uri, u.Query().Get("chl"))
}

func TestPNGRendererProducesDataURI(t *testing.T) {
	got, err := NewPNGRenderer(128).Render(context.Background(), uri)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(got, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(got, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("\x89PNG")))
}

func TestRenderersRejectEmptyContent(t *testing.T) {
	_, err := NewChartRenderer().Render(context.Background(), "")
	assert.Error(t, err)
	_, err = NewPNGRenderer(0).Render(context.Background(), "")
	assert.Error(t, err)
}
