package source

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rentkit/rentkit/core"
)

// Fanout 并发拉取基础记录与富化来源，并按主键合并：
// 配套数据按社区名左连接，犯罪率按县名左连接。
// 富化来源缺失某个 key 时对应字段保持零值，合法性最终由 dataset.Store.Load 把关。
type Fanout struct {
	Rent    Source        // 必填：基础记录来源
	Amenity AmenitySource // 可选
	Crime   CrimeSource   // 可选
	Timeout time.Duration // 每个来源的超时时间（0 表示不限）
}

// Load 拉取并合并三类来源，产出可直接交给 dataset.Store.Load 的记录。
// 基础来源失败则整体失败；富化来源失败同样失败——数据是一次性装载的，
// 静默丢掉一列会让归一化结果悄悄失真。
func (f *Fanout) Load(ctx context.Context) ([]*core.Neighborhood, error) {
	if f.Rent == nil {
		return nil, core.NewDomainError(core.ModuleSource, core.ErrorCodeInvalidInput, "source: rent source is required")
	}

	var (
		records   []*core.Neighborhood
		amenities map[string]Amenities
		crimes    map[string]float64
	)

	eg, egctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		fctx, cancel := f.sourceCtx(egctx)
		defer cancel()
		var err error
		records, err = f.Rent.Fetch(fctx)
		return err
	})

	if f.Amenity != nil {
		eg.Go(func() error {
			fctx, cancel := f.sourceCtx(egctx)
			defer cancel()
			var err error
			amenities, err = f.Amenity.Fetch(fctx)
			return err
		})
	}

	if f.Crime != nil {
		eg.Go(func() error {
			fctx, cancel := f.sourceCtx(egctx)
			defer cancel()
			var err error
			crimes, err = f.Crime.Fetch(fctx)
			return err
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := make([]*core.Neighborhood, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		merged := *r
		if a, ok := amenities[merged.Name]; ok {
			merged.RestaurantCount = a.Restaurants
			merged.ShopCount = a.Shops
			merged.GroceryCount = a.Groceries
			merged.AmenityCount = a.Total()
		}
		if rate, ok := crimes[merged.County]; ok {
			merged.CrimeRate = rate
		}
		out = append(out, &merged)
	}
	return out, nil
}

func (f *Fanout) sourceCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if f.Timeout > 0 {
		return context.WithTimeout(ctx, f.Timeout)
	}
	return context.WithCancel(ctx)
}
