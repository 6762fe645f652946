package middleware

import (
	"net"
	"net/http"

	applogger "Starluck/pkg/logger"

	"github.com/labstack/echo/v4"
)

// HostFilter restricts clients to an allow list of IPs, CIDR blocks, or
// hostnames. An entry of "*" disables filtering.
func HostFilter(allowed []string, l *applogger.Logger) echo.MiddlewareFunc {
	var (
		exact = make(map[string]struct{})
		nets  []*net.IPNet
	)
	for _, entry := range allowed {
		if entry == "*" {
			return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
		}
		if _, ipNet, err := net.ParseCIDR(entry); err == nil {
			nets = append(nets, ipNet)
			continue
		}
		exact[entry] = struct{}{}
	}

	permit := func(host string) bool {
		if _, ok := exact[host]; ok {
			return true
		}
		ip := net.ParseIP(host)
		if ip == nil {
			return false
		}
		for _, n := range nets {
			if n.Contains(ip) {
				return true
			}
		}
		return false
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			host := c.RealIP()
			if permit(host) {
				return next(c)
			}
			if l != nil {
				l.Warn("rejected client", applogger.String("host", host))
			}
			return c.JSON(http.StatusForbidden, map[string]interface{}{
				"status":  http.StatusForbidden,
				"message": "host not allowed",
			})
		}
	}
}
