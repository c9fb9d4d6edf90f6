package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

var levelTags = map[string]struct{ plain, color string }{
	"TRACE": {"[TRC]", "\033[90m[TRC]\033[0m"},
	"DEBUG": {"[DBG]", "\033[36m[DBG]\033[0m"},
	"INFO":  {"[INF]", "\033[32m[INF]\033[0m"},
	"WARN":  {"[WRN]", "\033[33m[WRN]\033[0m"},
	"ERROR": {"[ERR]", "\033[31m[ERR]\033[0m"},
	"FATAL": {"[FTL]", "\033[35m[FTL]\033[0m"},
}

// consoleWriter renders events as "15:04:05 [REP][DBG] message key:value",
// where REP is the first three letters of the program name.
func consoleWriter(cfg *Config, w io.Writer, name string) zerolog.ConsoleWriter {
	prefix := ""
	if len(name) >= 3 {
		prefix = "[" + strings.ToUpper(name[:3]) + "]"
		if !cfg.NoColor {
			prefix = "\033[34m" + prefix + "\033[0m"
		}
	}
	return zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    cfg.NoColor,
		FormatLevel: func(i interface{}) string {
			raw := strings.ToUpper(fmt.Sprint(i))
			tag, ok := levelTags[raw]
			if !ok {
				return prefix + "[" + raw + "]"
			}
			if cfg.NoColor {
				return prefix + tag.plain
			}
			return prefix + tag.color
		},
		FormatFieldName: func(i interface{}) string {
			return fmt.Sprintf("%s:", i)
		},
		FormatFieldValue: func(i interface{}) string {
			if i == nil {
				return ""
			}
			return fmt.Sprintf("%s", i)
		},
	}
}
