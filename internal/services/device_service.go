package services

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mileusna/useragent"

	"github.com/example/profile/internal/models"
)

// DeviceService resolves caller network and device metadata for login
// notifications and the audit log.
type DeviceService struct {
	lookupURL string
	client    *http.Client
}

// NewDeviceService configures the public-IP lookup endpoint. An empty
// lookupURL disables the external query and the header-derived
// address wins.
func NewDeviceService(lookupURL string) *DeviceService {
	return &DeviceService{
		lookupURL: lookupURL,
		client:    &http.Client{Timeout: 3 * time.Second},
	}
}

// Describe resolves the caller's address and User-Agent details. The
// external IP lookup is best-effort; on any failure the
// header-derived address stands.
func (s *DeviceService) Describe(remoteIP, forwardedFor, realIP, userAgent string) models.DeviceInfo {
	info := models.DeviceInfo{
		IP:        headerIP(forwardedFor, realIP, remoteIP),
		UserAgent: userAgent,
	}
	if pub := s.publicIP(); pub != "" {
		info.IP = pub
	}

	ua := useragent.Parse(userAgent)
	info.Browser = strings.TrimSpace(ua.Name + " " + ua.Version)
	info.OS = strings.TrimSpace(ua.OS + " " + ua.OSVersion)
	switch {
	case ua.Bot:
		info.Device = "Bot"
	case ua.Tablet:
		info.Device = "Tablet"
	case ua.Mobile:
		info.Device = "Mobile"
	default:
		info.Device = "Desktop"
	}
	return info
}

// publicIP queries the configured lookup endpoint, expecting an
// ipify-style {"ip": "..."} body. Empty string on any failure.
func (s *DeviceService) publicIP() string {
	if s.lookupURL == "" {
		return ""
	}

	resp, err := s.client.Get(s.lookupURL)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	var body struct {
		IP string `json:"ip"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1024)).Decode(&body); err != nil {
		return ""
	}
	return strings.TrimSpace(body.IP)
}

// headerIP picks the first usable address: the leftmost
// X-Forwarded-For hop, then X-Real-IP, then the connection address.
func headerIP(forwardedFor, realIP, remoteIP string) string {
	if forwardedFor != "" {
		first, _, _ := strings.Cut(forwardedFor, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if realIP != "" {
		return realIP
	}
	return remoteIP
}
