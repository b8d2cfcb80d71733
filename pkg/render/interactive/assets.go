package interactive

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/matzehuels/vitalchart/pkg/errors"
	"github.com/matzehuels/vitalchart/pkg/render"
)

const (
	capabilityName = "echarts"
	runtimeScript  = "echarts.min.js"

	// probeTimeout bounds the request for a remote runtime.
	probeTimeout = 5 * time.Second
)

// assetsCapability checks that the ECharts runtime can be loaded from the
// configured host.
type assetsCapability struct {
	host string
}

// newAssetsCapability combines the configured on/off switch with the
// runtime check. A disabled renderer never inspects the host.
func newAssetsCapability(o Options) render.Capability {
	return render.All(capabilityName,
		render.Static{Label: capabilityName, Reason: o.Disabled},
		assetsCapability{host: o.AssetsHost},
	)
}

func (c assetsCapability) Name() string { return capabilityName }

func (c assetsCapability) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir, remote, err := parseHost(c.host)
	if err != nil {
		return err
	}
	if remote {
		return probe(ctx, c.host+runtimeScript)
	}

	script := filepath.Join(dir, runtimeScript)
	info, err := os.Stat(script)
	if err != nil {
		return errors.Unavailable(capabilityName, err)
	}
	if info.IsDir() {
		return errors.New(errors.ErrCodeCapabilityUnavailable, "%s: %s is a directory", capabilityName, script)
	}
	return nil
}

// parseHost classifies an assets host as remote (http/https) or a local
// directory, returning the directory for the latter.
func parseHost(host string) (dir string, remote bool, err error) {
	u, perr := url.Parse(host)
	switch {
	case perr != nil:
		return "", false, errors.Wrap(errors.ErrCodeCapabilityUnavailable, perr, "%s: invalid assets host %q", capabilityName, host)
	case u.Scheme == "http" || u.Scheme == "https":
		if u.Host == "" {
			return "", false, errors.New(errors.ErrCodeCapabilityUnavailable, "%s: assets host %q has no host name", capabilityName, host)
		}
		return "", true, nil
	case u.Scheme == "file":
		return filepath.FromSlash(u.Path), false, nil
	case u.Scheme == "":
		return strings.TrimSuffix(host, "/"), false, nil
	default:
		return "", false, errors.New(errors.ErrCodeCapabilityUnavailable, "%s: unsupported assets host scheme %q", capabilityName, u.Scheme)
	}
}

// probe asks a remote host for the runtime script. Any answer other than
// 200 OK makes the runtime unavailable; cancellation is returned as is.
func probe(ctx context.Context, script string) error {
	reqCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodHead, script, nil)
	if err != nil {
		return errors.Unavailable(capabilityName, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return errors.Unavailable(capabilityName, err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.New(errors.ErrCodeCapabilityUnavailable, "%s: %s returned %s", capabilityName, script, resp.Status)
	}
	return nil
}
