package service

import (
	"context"

	"metroll_cms/cache"
	"metroll_cms/client"
	"metroll_cms/model"
)

const (
	ticketEntity     = "tickets"
	ticketPath       = "/tickets"
	validationEntity = "ticket-validations"
	validationPath   = "/ticket-validations"
)

type TicketService struct {
	Client *client.Client
	Cache  *cache.Query
}

func NewTicketService(c *client.Client, q *cache.Query) *TicketService {
	return &TicketService{Client: c, Cache: q}
}

func (s *TicketService) List(ctx context.Context, pageable *model.Pageable, filters map[string]string) (model.Page[model.Ticket], error) {
	return listPage[model.Ticket](ctx, s.Client, s.Cache, ticketEntity, ticketPath, pageable, filters)
}

func (s *TicketService) Search(ctx context.Context, query string, pageable *model.Pageable) (model.Page[model.Ticket], error) {
	return s.List(ctx, pageable, searchFilters(query))
}

func (s *TicketService) Get(ctx context.Context, id string) (model.Ticket, error) {
	return getRecord[model.Ticket](ctx, s.Client, s.Cache, ticketEntity, ticketPath+"/"+id, id)
}

func (s *TicketService) GetByNumber(ctx context.Context, number string) (model.Ticket, error) {
	return getRecord[model.Ticket](ctx, s.Client, s.Cache, ticketEntity, ticketPath+"/number/"+number, "number:"+number)
}

// Validations lists the append-only entry/exit log of one ticket. There is
// no mutation path for validations anywhere in the CMS.
func (s *TicketService) Validations(ctx context.Context, ticketID string, pageable *model.Pageable) (model.Page[model.TicketValidation], error) {
	filters := map[string]string{"ticketId": ticketID}
	return listPage[model.TicketValidation](ctx, s.Client, s.Cache, validationEntity, validationPath, pageable, filters)
}

func (s *TicketService) Summary(ctx context.Context) (model.TicketSummary, error) {
	return getSummary(ctx, s.Client, s.Cache, ticketEntity, ticketPath+"/summary", func() (model.TicketSummary, error) {
		page, err := client.FetchPage[model.Ticket](ctx, s.Client, ticketPath, &model.Pageable{Page: 0, Size: summaryScanLimit}, nil)
		if err != nil {
			return model.TicketSummary{}, err
		}
		total, statuses := model.TallyStatus(model.TicketStatusMeta, page.Content, func(t model.Ticket) model.TicketStatus { return t.Status })
		_, types := model.TallyStatus(model.TicketTypeMeta, page.Content, func(t model.Ticket) model.TicketType { return t.TicketType })
		return model.TicketSummary{
			TotalTickets: total,
			Valid:        statuses[model.TicketValid],
			Used:         statuses[model.TicketUsed],
			Expired:      statuses[model.TicketExpired],
			Cancelled:    statuses[model.TicketCancelled],
			P2P:          types[model.TicketP2P],
			Timed:        types[model.TicketTimed],
		}, nil
	})
}
