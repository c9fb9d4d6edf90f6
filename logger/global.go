package logger

import "sync"

var (
	mu     sync.RWMutex
	global *Logger
	named  = map[string]*Logger{}
)

// SetGlobalLogger sets the logger behind the package-level functions.
func SetGlobalLogger(l *Logger) {
	mu.Lock()
	global = l
	mu.Unlock()
}

// GetGlobalLogger returns the global logger, creating one from the
// environment on first use.
func GetGlobalLogger() *Logger {
	mu.RLock()
	l := global
	mu.RUnlock()
	if l != nil {
		return l
	}
	mu.Lock()
	defer mu.Unlock()
	if global == nil {
		global = NewFromEnv("seqkit")
	}
	return global
}

// Register stores a named logger.
func Register(name string, l *Logger) {
	mu.Lock()
	named[name] = l
	mu.Unlock()
}

// Get returns the logger registered under name, or the global logger
// tagged with name as its component.
func Get(name string) *Logger {
	mu.RLock()
	l, ok := named[name]
	mu.RUnlock()
	if ok {
		return l
	}
	return GetGlobalLogger().WithComponent(name)
}

func Debug(msg string, fields ...map[string]interface{}) { GetGlobalLogger().Debug(msg, fields...) }

func Info(msg string, fields ...map[string]interface{}) { GetGlobalLogger().Info(msg, fields...) }

func Warn(msg string, fields ...map[string]interface{}) { GetGlobalLogger().Warn(msg, fields...) }

func Error(msg string, fields ...map[string]interface{}) { GetGlobalLogger().Error(msg, fields...) }
