package service

import (
	"context"
	"net/http"

	"metroll_cms/cache"
	"metroll_cms/client"
	"metroll_cms/model"
)

const (
	voucherEntity = "vouchers"
	voucherPath   = "/vouchers"
)

type VoucherService struct {
	Client *client.Client
	Cache  *cache.Query
}

func NewVoucherService(c *client.Client, q *cache.Query) *VoucherService {
	return &VoucherService{Client: c, Cache: q}
}

func (s *VoucherService) List(ctx context.Context, pageable *model.Pageable, filters map[string]string) (model.Page[model.Voucher], error) {
	return listPage[model.Voucher](ctx, s.Client, s.Cache, voucherEntity, voucherPath, pageable, filters)
}

func (s *VoucherService) Search(ctx context.Context, query string, pageable *model.Pageable) (model.Page[model.Voucher], error) {
	return s.List(ctx, pageable, searchFilters(query))
}

func (s *VoucherService) Get(ctx context.Context, id string) (model.Voucher, error) {
	return getRecord[model.Voucher](ctx, s.Client, s.Cache, voucherEntity, voucherPath+"/"+id, id)
}

func (s *VoucherService) Create(ctx context.Context, input model.CreateVoucherInput) (model.Voucher, error) {
	voucher, err := client.Decode[model.Voucher](s.Client.Perform(ctx, http.MethodPost, voucherPath, input, nil))
	if err != nil {
		return voucher, err
	}
	s.Cache.InvalidateEntity(ctx, voucherEntity)
	return voucher, nil
}

func (s *VoucherService) Update(ctx context.Context, id string, input model.UpdateVoucherInput) (model.Voucher, error) {
	voucher, err := client.Decode[model.Voucher](s.Client.Perform(ctx, http.MethodPut, voucherPath+"/"+id, input, nil))
	if err != nil {
		return voucher, err
	}
	s.invalidate(ctx, id)
	return voucher, nil
}

// Revoke is the only status transition the CMS drives; the rest happen
// backend-side as vouchers get spent or age out.
func (s *VoucherService) Revoke(ctx context.Context, id string) (model.Voucher, error) {
	voucher, err := client.Decode[model.Voucher](s.Client.Perform(ctx, http.MethodPatch, voucherPath+"/"+id+"/revoke", nil, nil))
	if err != nil {
		return voucher, err
	}
	s.invalidate(ctx, id)
	return voucher, nil
}

func (s *VoucherService) Summary(ctx context.Context) (model.VoucherSummary, error) {
	return getSummary(ctx, s.Client, s.Cache, voucherEntity, voucherPath+"/summary", func() (model.VoucherSummary, error) {
		page, err := client.FetchPage[model.Voucher](ctx, s.Client, voucherPath, &model.Pageable{Page: 0, Size: summaryScanLimit}, nil)
		if err != nil {
			return model.VoucherSummary{}, err
		}
		total, counts := model.TallyStatus(model.VoucherStatusMeta, page.Content, func(v model.Voucher) model.VoucherStatus { return v.Status })
		return model.VoucherSummary{
			TotalVouchers: total,
			Preserved:     counts[model.VoucherPreserved],
			Valid:         counts[model.VoucherValid],
			Used:          counts[model.VoucherUsed],
			Expired:       counts[model.VoucherExpired],
			Revoked:       counts[model.VoucherRevoked],
		}, nil
	})
}

func (s *VoucherService) invalidate(ctx context.Context, id string) {
	s.Cache.InvalidateEntity(ctx, voucherEntity)
	s.Cache.InvalidateRecord(ctx, voucherEntity, id)
}
