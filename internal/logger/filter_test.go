package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func newTestEntry(level logrus.Level, data logrus.Fields) *logrus.Entry {
	if data == nil {
		data = logrus.Fields{}
	}
	return &logrus.Entry{Logger: logrus.New(), Level: level, Data: data}
}

func TestFilterHook_LocTheoLogType(t *testing.T) {
	hook := NewFilterHook(&LogConfig{FilterLogTypes: "error,warn"})

	debugEntry := newTestEntry(logrus.DebugLevel, nil)
	if err := hook.Fire(debugEntry); err != nil {
		t.Fatalf("Fire không được trả lỗi: %v", err)
	}
	if debugEntry.Data["_filtered"] != true {
		t.Error("Entry debug phải bị lọc khi filter chỉ cho phép error,warn")
	}

	errorEntry := newTestEntry(logrus.ErrorLevel, nil)
	if err := hook.Fire(errorEntry); err != nil {
		t.Fatalf("Fire không được trả lỗi: %v", err)
	}
	if _, filtered := errorEntry.Data["_filtered"]; filtered {
		t.Error("Entry error không được bị lọc")
	}
}

func TestFilterHook_LocTheoModule(t *testing.T) {
	hook := NewFilterHook(&LogConfig{FilterModules: "auth"})

	chatEntry := newTestEntry(logrus.InfoLevel, logrus.Fields{"module": "chat"})
	_ = hook.Fire(chatEntry)
	if chatEntry.Data["_filtered"] != true {
		t.Error("Entry module chat phải bị lọc khi chỉ cho phép auth")
	}

	authEntry := newTestEntry(logrus.InfoLevel, logrus.Fields{"module": "auth"})
	_ = hook.Fire(authEntry)
	if _, filtered := authEntry.Data["_filtered"]; filtered {
		t.Error("Entry module auth không được bị lọc")
	}

	// Entry không có field module thì không áp filter module
	plainEntry := newTestEntry(logrus.InfoLevel, nil)
	_ = hook.Fire(plainEntry)
	if _, filtered := plainEntry.Data["_filtered"]; filtered {
		t.Error("Entry không có module không được bị lọc")
	}
}

func TestFilterHook_RongHoacSaoChoPhepTatCa(t *testing.T) {
	for _, filterStr := range []string{"", "*"} {
		hook := NewFilterHook(&LogConfig{FilterModules: filterStr, FilterLogTypes: filterStr})
		entry := newTestEntry(logrus.DebugLevel, logrus.Fields{"module": "anything"})
		_ = hook.Fire(entry)
		if _, filtered := entry.Data["_filtered"]; filtered {
			t.Errorf("Filter %q phải cho phép tất cả entry", filterStr)
		}
	}
}

func TestDefaultConfig_DocFilterTuEnv(t *testing.T) {
	t.Setenv("LOG_FILTER_MODULES", "auth,chat")
	t.Setenv("LOG_FILTER_LOG_TYPES", "error")

	config := DefaultConfig()
	if config.FilterModules != "auth,chat" {
		t.Errorf("FilterModules = %q, muốn %q", config.FilterModules, "auth,chat")
	}
	if config.FilterLogTypes != "error" {
		t.Errorf("FilterLogTypes = %q, muốn %q", config.FilterLogTypes, "error")
	}
}
