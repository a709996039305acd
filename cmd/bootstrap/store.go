package bootstrap

import (
	"frontdesk/internal/infra/servicelog"
	"frontdesk/internal/infra/store"
	"frontdesk/internal/pkg/config"
	"frontdesk/internal/usecase"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewFileStore,
		NewCompletionLog,
		func(s *store.FileStore) usecase.SnapshotStore { return s },
		func(w *servicelog.Writer) usecase.CompletionLog { return w },
	),
)

func NewFileStore(cfg config.Config) *store.FileStore {
	return store.NewFileStore(cfg.Store.DataFile)
}

func NewCompletionLog(cfg config.Config) *servicelog.Writer {
	return servicelog.NewWriter(cfg.Store.ServiceLogFile)
}
