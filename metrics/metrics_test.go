package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Drolfothesgnir/minidom/dom"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestObserveParse(t *testing.T) {
	m := New()

	warns, err := dom.NewWarnings(dom.WarnOverflowNoCap, 0)
	require.NoError(t, err)

	input := "<div><p>Hello</div>"
	out := dom.Parse(input, nil, warns)
	m.ObserveParse("http", len(input), out, warns, time.Millisecond)

	require.Equal(t, 1.0, testutil.ToFloat64(m.parsesTotal.WithLabelValues("http", "ok")))
	require.Equal(t, 3.0, testutil.ToFloat64(m.nodesTotal))
	require.Equal(t, 2.0, testutil.ToFloat64(m.tokensTotal.WithLabelValues("OpeningTag")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.tokensTotal.WithLabelValues("ClosingTag")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.tokensTotal.WithLabelValues("Text")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.warningsTotal.WithLabelValues("Mismatched Closing Tag")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.warningsTotal.WithLabelValues("Unclosed Tag")))
	require.Equal(t, 1, testutil.CollectAndCount(m.parseDuration))
}

func TestObserveParse_Truncated(t *testing.T) {
	m := New()

	out := dom.Parse("<div><!-x", nil, nil)
	m.ObserveParse("cli", 9, out, nil, time.Millisecond)

	require.Equal(t, 1.0, testutil.ToFloat64(m.parsesTotal.WithLabelValues("cli", "truncated")))
	require.Equal(t, 0.0, testutil.ToFloat64(m.parsesTotal.WithLabelValues("cli", "ok")))
}

func TestRegistriesAreIndependent(t *testing.T) {
	a := New()
	b := New()

	a.ObserveCache("hit")
	a.ObserveCache("hit")
	b.ObserveCache("miss")

	require.Equal(t, 2.0, testutil.ToFloat64(a.cacheTotal.WithLabelValues("hit")))
	require.Equal(t, 0.0, testutil.ToFloat64(b.cacheTotal.WithLabelValues("hit")))
	require.Equal(t, 1.0, testutil.ToFloat64(b.cacheTotal.WithLabelValues("miss")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveCache("miss")

	server := httptest.NewServer(m.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `minidom_parse_cache_requests_total{outcome="miss"} 1`)
}
