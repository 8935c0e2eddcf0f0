package fetcher

import (
	"math/rand"
	"strings"
	"time"
)

type UserAgentType string

const (
	UserAgentAuto    UserAgentType = "auto"
	UserAgentChrome  UserAgentType = "chrome"
	UserAgentFirefox UserAgentType = "firefox"
	UserAgentSafari  UserAgentType = "safari"
)

const fallbackUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

var userAgents = map[UserAgentType][]string{
	UserAgentChrome: {
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
		"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36",
	},
	UserAgentFirefox: {
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:125.0) Gecko/20100101 Firefox/125.0",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 14.4; rv:125.0) Gecko/20100101 Firefox/125.0",
		"Mozilla/5.0 (X11; Linux x86_64; rv:124.0) Gecko/20100101 Firefox/124.0",
	},
	UserAgentSafari: {
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 14_4_1) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Safari/605.1.15",
		"Mozilla/5.0 (iPhone; CPU iPhone OS 17_4_1 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Mobile/15E148 Safari/604.1",
	},
}

type UserAgentSelector struct {
	rng *rand.Rand
}

func NewUserAgentSelector() *UserAgentSelector {
	return &UserAgentSelector{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// GetUserAgent picks a user agent for the given browser family. "auto" (or
// empty) draws from every family; an unrecognized value is treated as a
// custom user agent string and returned verbatim.
func (uas *UserAgentSelector) GetUserAgent(uaType string) string {
	uaType = strings.ToLower(strings.TrimSpace(uaType))
	if uaType == "" {
		uaType = string(UserAgentAuto)
	}

	switch UserAgentType(uaType) {
	case UserAgentAuto:
		return uas.pickAny()
	case UserAgentChrome, UserAgentFirefox, UserAgentSafari:
		agents := userAgents[UserAgentType(uaType)]
		return agents[uas.rng.Intn(len(agents))]
	default:
		return uaType
	}
}

func (uas *UserAgentSelector) pickAny() string {
	all := []string{}
	for _, agents := range userAgents {
		all = append(all, agents...)
	}
	if len(all) == 0 {
		return fallbackUserAgent
	}
	return all[uas.rng.Intn(len(all))]
}
