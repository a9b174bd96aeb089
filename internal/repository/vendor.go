package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/danielolaitan/invoice-agent/gen/ent"
	"github.com/danielolaitan/invoice-agent/gen/ent/vendor"
	"github.com/danielolaitan/invoice-agent/internal/common"
	"github.com/danielolaitan/invoice-agent/internal/entity"
	"github.com/danielolaitan/invoice-agent/internal/utils"
)

type VendorRepository interface {
	Create(ctx context.Context, v entity.Vendor) (entity.Vendor, error)
	GetByCanonicalName(ctx context.Context, name string) (entity.Vendor, error)
	ListVendors(ctx context.Context) ([]entity.Vendor, error)
}

type vendorRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewVendorRepository(client *ent.Client, logger *slog.Logger) VendorRepository {
	return &vendorRepository{client: client, logger: logger}
}

func (r *vendorRepository) Create(ctx context.Context, v entity.Vendor) (entity.Vendor, error) {
	builder := r.client.Vendor.Create().
		SetCanonicalName(v.CanonicalName)
	if len(v.Aliases) > 0 {
		builder = builder.SetAliases(v.Aliases)
	}
	if len(v.Meta) > 0 {
		builder = builder.SetMeta(v.Meta)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return entity.Vendor{}, fmt.Errorf("%w: %v", common.ErrInvalidInput, err)
		}
		r.logger.Error("failed to create vendor", "canonical_name", v.CanonicalName, "error", err)
		return entity.Vendor{}, err
	}
	return utils.ToVendor(row), nil
}

func (r *vendorRepository) GetByCanonicalName(ctx context.Context, name string) (entity.Vendor, error) {
	row, err := r.client.Vendor.Query().
		Where(vendor.CanonicalName(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return entity.Vendor{}, common.ErrNotFound
		}
		return entity.Vendor{}, err
	}
	return utils.ToVendor(row), nil
}

func (r *vendorRepository) ListVendors(ctx context.Context) ([]entity.Vendor, error) {
	rows, err := r.client.Vendor.Query().
		Order(vendor.ByCanonicalName()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list vendors", "error", err)
		return nil, err
	}

	result := make([]entity.Vendor, len(rows))
	for i, row := range rows {
		result[i] = utils.ToVendor(row)
	}
	return result, nil
}
