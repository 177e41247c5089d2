package pkg

import (
	"net"
	"net/http"
	"regexp"
	"strings"
)

var localDockerIpRegex = regexp.MustCompile(`^172\.\d{1,3}\.0\.1:\d{1,5}`)

func IPIsLocal(ipAddr string) bool {
	if strings.HasPrefix(ipAddr, "127.0.0.1:") {
		return true
	}
	// request coming from within the docker network
	return localDockerIpRegex.MatchString(ipAddr)
}

// ClientIP returns the address the request originated from, honoring
// the reverse proxy headers. Local addresses collapse to "localhost".
func ClientIP(r *http.Request) string {
	ipAddr := r.Header.Get("X-Real-Ip")
	if ipAddr == "" {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			ipAddr = strings.TrimSpace(strings.Split(fwd, ",")[0])
		}
	}
	if ipAddr == "" {
		ipAddr = r.RemoteAddr
	}

	if IPIsLocal(ipAddr) {
		return "localhost"
	}

	if host, _, err := net.SplitHostPort(ipAddr); err == nil {
		return host
	}
	return ipAddr
}
