package service

import (
	"context"
	"net/http"

	"github.com/jinzhu/copier"

	"metroll_cms/cache"
	"metroll_cms/client"
	"metroll_cms/model"
)

const (
	orderEntity = "orders"
	orderPath   = "/orders/v1"
)

type OrderService struct {
	Client *client.Client
	Cache  *cache.Query
}

func NewOrderService(c *client.Client, q *cache.Query) *OrderService {
	return &OrderService{Client: c, Cache: q}
}

func (s *OrderService) List(ctx context.Context, pageable *model.Pageable, filters map[string]string) (model.Page[model.Order], error) {
	return listPage[model.Order](ctx, s.Client, s.Cache, orderEntity, orderPath, pageable, filters)
}

func (s *OrderService) Search(ctx context.Context, query string, pageable *model.Pageable) (model.Page[model.Order], error) {
	return s.List(ctx, pageable, searchFilters(query))
}

func (s *OrderService) Get(ctx context.Context, id string) (model.Order, error) {
	return getRecord[model.Order](ctx, s.Client, s.Cache, orderEntity, orderPath+"/"+id, id)
}

// Checkout expands the cart into one order-detail row per purchased
// ticket, computes the display totals, and submits the order. The server
// recomputes and is authoritative; the client-side totals exist so the
// review screen can show the same numbers the server will.
func (s *OrderService) Checkout(ctx context.Context, staffID string, input model.CheckoutInput) (model.Order, error) {
	discountPct, voucherAmount, voucherMin, err := s.discountTerms(ctx, input)
	if err != nil {
		return model.Order{}, err
	}

	req := model.CheckoutRequest{
		StaffID:           staffID,
		CustomerID:        input.CustomerID,
		DiscountPackageID: input.DiscountPackageID,
		VoucherID:         input.VoucherID,
		PaymentMethod:     input.PaymentMethod,
	}
	for _, item := range input.Items {
		for i := 0; i < item.Quantity; i++ {
			var detail model.OrderDetail
			if err := copier.Copy(&detail, &item); err != nil {
				return model.Order{}, &client.Error{Kind: client.KindUnknown, Message: err.Error()}
			}
			detail.BaseTotal = item.UnitPrice
			detail.DiscountTotal = detail.BaseTotal * discountPct
			detail.FinalTotal = detail.BaseTotal - detail.DiscountTotal
			req.Details = append(req.Details, detail)
			req.BaseTotal += detail.BaseTotal
			req.DiscountTotal += detail.DiscountTotal
		}
	}
	// The voucher applies to the order as a whole, not per detail, and
	// only above its minimum-transaction threshold.
	if voucherAmount > 0 && req.BaseTotal >= voucherMin {
		req.DiscountTotal += voucherAmount
	}
	req.FinalTotal = req.BaseTotal - req.DiscountTotal
	if req.FinalTotal < 0 {
		req.FinalTotal = 0
	}

	order, err := client.Decode[model.Order](s.Client.Perform(ctx, http.MethodPost, orderPath+"/checkout", req, nil))
	if err != nil {
		return order, err
	}
	s.Cache.InvalidateEntity(ctx, orderEntity)
	// Checkout mints tickets, so those lists are stale now too.
	s.Cache.InvalidateEntity(ctx, ticketEntity)
	return order, nil
}

func (s *OrderService) discountTerms(ctx context.Context, input model.CheckoutInput) (pct, voucherAmount, voucherMin float64, err error) {
	if input.DiscountPackageID != nil {
		pkg, err := client.Decode[model.DiscountPackage](s.Client.Perform(ctx, http.MethodGet, packagePath+"/"+*input.DiscountPackageID, nil, nil))
		if err != nil {
			return 0, 0, 0, err
		}
		pct = pkg.DiscountPercentage
	}
	if input.VoucherID != nil {
		voucher, err := client.Decode[model.Voucher](s.Client.Perform(ctx, http.MethodGet, voucherPath+"/"+*input.VoucherID, nil, nil))
		if err != nil {
			return 0, 0, 0, err
		}
		voucherAmount = voucher.DiscountAmount
		voucherMin = voucher.MinTransactionAmount
	}
	return pct, voucherAmount, voucherMin, nil
}

func (s *OrderService) Summary(ctx context.Context) (model.OrderSummary, error) {
	return getSummary(ctx, s.Client, s.Cache, orderEntity, orderPath+"/summary", func() (model.OrderSummary, error) {
		page, err := client.FetchPage[model.Order](ctx, s.Client, orderPath, &model.Pageable{Page: 0, Size: summaryScanLimit}, nil)
		if err != nil {
			return model.OrderSummary{}, err
		}
		total, counts := model.TallyStatus(model.OrderStatusMeta, page.Content, func(o model.Order) model.OrderStatus { return o.Status })
		sum := model.OrderSummary{
			TotalOrders: total,
			Pending:     counts[model.OrderPending],
			Completed:   counts[model.OrderCompleted],
			Failed:      counts[model.OrderFailed],
		}
		// Revenue counts completed orders only.
		for _, o := range page.Content {
			if o.Status == model.OrderCompleted {
				sum.TotalRevenue += o.FinalTotal
			}
		}
		return sum, nil
	})
}
