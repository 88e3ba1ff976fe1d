package ch

import (
	"runtime"
	"strings"

	"addressbook/internal/core/version"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// ClientInfo labels our connections in system.query_log
// name is the client and tag its role; blanks read as unknown
func ClientInfo(name, tag string) clickhouse.ClientInfo {
	b := version.Info()
	return clickhouse.ClientInfo{Products: []struct {
		Name    string
		Version string
	}{
		{Name: orUnknown(name), Version: b.Version},
		{Name: "role", Version: orUnknown(tag)},
		{Name: "commit", Version: b.Commit},
		{Name: "go", Version: runtime.Version()},
	}}
}

func orUnknown(s string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return "unknown"
}
