package cli

import (
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/custodia-labs/hitlist/internal/logger"
)

// watchConfig re-reads the config file on change while a long-running
// command is active. Only the verbose setting applies live; source and
// data settings take effect on the next run.
func watchConfig(v *viper.Viper) bool {
	if v.ConfigFileUsed() == "" {
		return false
	}
	v.OnConfigChange(configChanged(v))
	v.WatchConfig()
	return true
}

func configChanged(v *viper.Viper) func(fsnotify.Event) {
	return func(e fsnotify.Event) {
		logger.SetVerbose(v.GetBool("verbose"))
		logger.Info("config %s changed (%s)", e.Name, e.Op)
	}
}
