package service

import (
	"context"
	"net/http"

	"metroll_cms/cache"
	"metroll_cms/client"
	"metroll_cms/model"
)

const (
	accountEntity = "accounts"
	accountPath   = "/accounts"
)

type AccountService struct {
	Client *client.Client
	Cache  *cache.Query
}

func NewAccountService(c *client.Client, q *cache.Query) *AccountService {
	return &AccountService{Client: c, Cache: q}
}

func (s *AccountService) List(ctx context.Context, pageable *model.Pageable, filters map[string]string) (model.Page[model.Account], error) {
	return listPage[model.Account](ctx, s.Client, s.Cache, accountEntity, accountPath, pageable, filters)
}

func (s *AccountService) Search(ctx context.Context, query string, pageable *model.Pageable) (model.Page[model.Account], error) {
	return s.List(ctx, pageable, searchFilters(query))
}

func (s *AccountService) Get(ctx context.Context, id string) (model.Account, error) {
	return getRecord[model.Account](ctx, s.Client, s.Cache, accountEntity, accountPath+"/"+id, id)
}

func (s *AccountService) Create(ctx context.Context, input model.CreateAccountInput) (model.Account, error) {
	account, err := client.Decode[model.Account](s.Client.Perform(ctx, http.MethodPost, accountPath, input, nil))
	if err != nil {
		return account, err
	}
	s.Cache.InvalidateEntity(ctx, accountEntity)
	return account, nil
}

func (s *AccountService) Update(ctx context.Context, id string, input model.UpdateAccountInput) (model.Account, error) {
	account, err := client.Decode[model.Account](s.Client.Perform(ctx, http.MethodPut, accountPath+"/"+id, input, nil))
	if err != nil {
		return account, err
	}
	s.invalidate(ctx, id)
	return account, nil
}

// SetActive deactivates or reactivates an account; accounts are never
// physically deleted.
func (s *AccountService) SetActive(ctx context.Context, id string, active bool) (model.Account, error) {
	body := map[string]bool{"active": active}
	account, err := client.Decode[model.Account](s.Client.Perform(ctx, http.MethodPatch, accountPath+"/"+id+"/active", body, nil))
	if err != nil {
		return account, err
	}
	s.invalidate(ctx, id)
	return account, nil
}

func (s *AccountService) AssignStation(ctx context.Context, id, stationCode string) (model.Account, error) {
	body := model.AssignStationInput{StationCode: stationCode}
	account, err := client.Decode[model.Account](s.Client.Perform(ctx, http.MethodPut, accountPath+"/"+id+"/station", body, nil))
	if err != nil {
		return account, err
	}
	s.invalidate(ctx, id)
	return account, nil
}

// Summary tries the dedicated endpoint and falls back to counting up to
// 1000 accounts client-side, keyed by the role table.
func (s *AccountService) Summary(ctx context.Context) (model.AccountSummary, error) {
	return getSummary(ctx, s.Client, s.Cache, accountEntity, accountPath+"/summary", func() (model.AccountSummary, error) {
		page, err := client.FetchPage[model.Account](ctx, s.Client, accountPath, &model.Pageable{Page: 0, Size: summaryScanLimit}, nil)
		if err != nil {
			return model.AccountSummary{}, err
		}
		total, roles := model.TallyStatus(model.RoleMeta, page.Content, func(acc model.Account) model.Role { return acc.Role })
		sum := model.AccountSummary{
			TotalAccounts:  total,
			TotalAdmins:    roles[model.RoleAdmin],
			TotalStaff:     roles[model.RoleStaff],
			TotalCustomers: roles[model.RoleCustomer],
		}
		for _, acc := range page.Content {
			if acc.Active {
				sum.ActiveAccounts++
			} else {
				sum.InactiveAccounts++
			}
		}
		return sum, nil
	})
}

func (s *AccountService) invalidate(ctx context.Context, id string) {
	s.Cache.InvalidateEntity(ctx, accountEntity)
	s.Cache.InvalidateRecord(ctx, accountEntity, id)
}
