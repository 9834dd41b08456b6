package service

import (
	"context"
	"io"
	"net/http"

	"metroll_cms/cache"
	"metroll_cms/client"
	"metroll_cms/model"
)

const (
	packageEntity    = "discount-packages"
	packagePath      = "/discount-packages"
	assignmentEntity = "account-discount-packages"
	assignmentPath   = "/account-discount-packages"
)

type DiscountService struct {
	Client *client.Client
	Cache  *cache.Query
}

func NewDiscountService(c *client.Client, q *cache.Query) *DiscountService {
	return &DiscountService{Client: c, Cache: q}
}

func (s *DiscountService) ListPackages(ctx context.Context, pageable *model.Pageable, filters map[string]string) (model.Page[model.DiscountPackage], error) {
	return listPage[model.DiscountPackage](ctx, s.Client, s.Cache, packageEntity, packagePath, pageable, filters)
}

func (s *DiscountService) GetPackage(ctx context.Context, id string) (model.DiscountPackage, error) {
	return getRecord[model.DiscountPackage](ctx, s.Client, s.Cache, packageEntity, packagePath+"/"+id, id)
}

func (s *DiscountService) CreatePackage(ctx context.Context, input model.SaveDiscountPackageInput) (model.DiscountPackage, error) {
	pkg, err := client.Decode[model.DiscountPackage](s.Client.Perform(ctx, http.MethodPost, packagePath, input, nil))
	if err != nil {
		return pkg, err
	}
	s.Cache.InvalidateEntity(ctx, packageEntity)
	return pkg, nil
}

func (s *DiscountService) UpdatePackage(ctx context.Context, id string, input model.SaveDiscountPackageInput) (model.DiscountPackage, error) {
	pkg, err := client.Decode[model.DiscountPackage](s.Client.Perform(ctx, http.MethodPut, packagePath+"/"+id, input, nil))
	if err != nil {
		return pkg, err
	}
	s.invalidatePackage(ctx, id)
	return pkg, nil
}

func (s *DiscountService) TerminatePackage(ctx context.Context, id string) (model.DiscountPackage, error) {
	pkg, err := client.Decode[model.DiscountPackage](s.Client.Perform(ctx, http.MethodPatch, packagePath+"/"+id+"/terminate", nil, nil))
	if err != nil {
		return pkg, err
	}
	s.invalidatePackage(ctx, id)
	return pkg, nil
}

func (s *DiscountService) ListAssignments(ctx context.Context, pageable *model.Pageable, filters map[string]string) (model.Page[model.AccountDiscountPackage], error) {
	return listPage[model.AccountDiscountPackage](ctx, s.Client, s.Cache, assignmentEntity, assignmentPath, pageable, filters)
}

// Assign binds an account to a package, optionally with a supporting
// document, as one multipart submission. document may be nil.
func (s *DiscountService) Assign(ctx context.Context, input model.AssignPackageInput, documentName string, document io.Reader) (model.AccountDiscountPackage, error) {
	fields := map[string]string{
		"accountId":         input.AccountID,
		"discountPackageId": input.DiscountPackageID,
	}
	assignment, err := client.Decode[model.AccountDiscountPackage](
		s.Client.PerformMultipart(ctx, assignmentPath, fields, "document", documentName, document))
	if err != nil {
		return assignment, err
	}
	s.Cache.InvalidateEntity(ctx, assignmentEntity)
	return assignment, nil
}

func (s *DiscountService) Unassign(ctx context.Context, id string) error {
	if _, err := s.Client.Perform(ctx, http.MethodDelete, assignmentPath+"/"+id, nil, nil); err != nil {
		return err
	}
	s.Cache.InvalidateEntity(ctx, assignmentEntity)
	s.Cache.InvalidateRecord(ctx, assignmentEntity, id)
	return nil
}

func (s *DiscountService) invalidatePackage(ctx context.Context, id string) {
	s.Cache.InvalidateEntity(ctx, packageEntity)
	s.Cache.InvalidateRecord(ctx, packageEntity, id)
}
