package service

import (
	"time"

	"github.com/rs/zerolog"

	"reorder-service/internal/order/model"
)

// Generate — весь конвейер: читаем обе таблицы, собираем текст по поставщикам,
// матчим по справочнику и сортируем. Ничего не пишет: вызывающий сохраняет
// результат только после успеха, так что при ошибке старый вывод остаётся.
func Generate(source, catalog [][]string, opt model.Options, log zerolog.Logger) (model.Result, error) {
	start := time.Now()
	opt = WithDefaults(opt)

	// 1) Чтение + валидация (справочник — строгий контракт)
	entries, err := ReadCatalog(catalog)
	if err != nil {
		return model.Result{}, err
	}
	if skipped := len(catalog) - 1 - len(entries); skipped > 0 {
		log.Debug().Int("skipped", skipped).Msg("catalog rows without 商品")
	}
	rows := ReadSource(source)

	// 2) Текст по поставщикам
	blob := AggregateVendorText(rows)

	// 3) Матчинг
	lines := BuildOrderLines(blob, entries, opt)
	if miss := len(blob) - len(lines); miss > 0 {
		log.Debug().Int("vendors_without_match", miss).Msg("vendors skipped")
	}

	// 4) Порядок вывода
	SortOrderLines(lines, opt.Locale)

	log.Info().
		Int("sourceRows", len(rows)).
		Int("catalogEntries", len(entries)).
		Int("vendors", len(blob)).
		Int("lines", len(lines)).
		Dur("elapsed", time.Since(start)).
		Msg("order lines generated")

	return model.Result{
		Lines:          lines,
		SourceRows:     len(rows),
		CatalogEntries: len(entries),
		Vendors:        len(blob),
		Opts:           opt,
	}, nil
}

// WithDefaults заполняет пустые опции значениями по умолчанию.
func WithDefaults(opt model.Options) model.Options {
	if opt.DefaultUnit == "" {
		opt.DefaultUnit = DefaultUnit
	}
	if opt.UnspecifiedVendor == "" {
		opt.UnspecifiedVendor = DefaultUnspecifiedVendor
	}
	if opt.Locale == "" {
		opt.Locale = DefaultLocale
	}
	return opt
}
