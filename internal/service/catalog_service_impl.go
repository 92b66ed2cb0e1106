package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alimikegami/point-of-sales/store-admin/internal/catalog"
	"github.com/alimikegami/point-of-sales/store-admin/internal/domain"
	"github.com/alimikegami/point-of-sales/store-admin/internal/dto"
	"github.com/alimikegami/point-of-sales/store-admin/internal/repository"
	pkgdto "github.com/alimikegami/point-of-sales/store-admin/pkg/dto"
	"github.com/alimikegami/point-of-sales/store-admin/pkg/errs"
	"github.com/rs/zerolog/log"
)

type CatalogServiceImpl struct {
	productRepo repository.ProductRepository
	classifier  *catalog.Classifier
	publisher   EventPublisher
	now         func() time.Time
}

func CreateCatalogService(productRepo repository.ProductRepository, classifier *catalog.Classifier, publisher EventPublisher) CatalogService {
	return &CatalogServiceImpl{
		productRepo: productRepo,
		classifier:  classifier,
		publisher:   publisher,
		now:         time.Now,
	}
}

func (s *CatalogServiceImpl) InspectProduct(ctx context.Context, id string) (inspection dto.ProductInspection, err error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return inspection, errs.ErrClient
	}

	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return
	}
	inspection.Product = product

	if patch, changed := s.classifier.Correct(product); changed {
		target := product
		target.Apply(patch)
		inspection.Suggested = &dto.Placement{Category: target.Category, SubCategory: target.SubCategory}
	}

	inspection.MissingSpecKeys = []string{}
	for _, key := range catalog.TemplateKeys(product.Category) {
		if _, ok := product.Specifications[key]; !ok {
			inspection.MissingSpecKeys = append(inspection.MissingSpecKeys, key)
		}
	}
	sort.Strings(inspection.MissingSpecKeys)
	_, inspection.NeedsSpecFill = catalog.FillSpecifications(product)

	if colors, changed := catalog.NormalizeColors(product.Colors); changed {
		inspection.NormalizedColors = colors
	}

	return inspection, nil
}

// correctionRule decides whether a product needs a patch and describes it.
type correctionRule func(p domain.Product) (patch domain.ProductPatch, changed bool, detail string)

// AuditCategories is read-only. filter narrows the scan; the zero value
// audits the whole catalogue.
func (s *CatalogServiceImpl) AuditCategories(ctx context.Context, filter pkgdto.Filter) (audit dto.CategoryAudit, err error) {
	products, undecodable, err := s.productRepo.GetProducts(ctx, filter)
	if err != nil {
		return
	}
	audit.Undecodable = undecodable

	counts := map[string]int{}
	audit.NonCanonical = []dto.CategoryCorrection{}
	for _, p := range products {
		counts[p.Category]++

		patch, changed := s.classifier.Correct(p)
		if !changed {
			continue
		}

		target := p
		target.Apply(patch)
		audit.NonCanonical = append(audit.NonCanonical, dto.CategoryCorrection{
			ProductID:       p.ID,
			Name:            p.Name,
			FromCategory:    p.Category,
			FromSubCategory: p.SubCategory,
			ToCategory:      target.Category,
			ToSubCategory:   target.SubCategory,
		})
	}

	audit.Total = len(products)
	audit.ByCategory = make([]dto.CategoryCount, 0, len(counts))
	for category, count := range counts {
		audit.ByCategory = append(audit.ByCategory, dto.CategoryCount{Category: category, Count: count})
	}
	sort.Slice(audit.ByCategory, func(i, j int) bool {
		if audit.ByCategory[i].Count != audit.ByCategory[j].Count {
			return audit.ByCategory[i].Count > audit.ByCategory[j].Count
		}
		return audit.ByCategory[i].Category < audit.ByCategory[j].Category
	})

	return audit, nil
}

func (s *CatalogServiceImpl) FixCategories(ctx context.Context, dryRun bool) (report dto.CorrectionReport, err error) {
	return s.correct(ctx, dryRun, "FixCategories", func(p domain.Product) (domain.ProductPatch, bool, string) {
		patch, changed := s.classifier.Correct(p)
		if !changed {
			return patch, false, ""
		}

		target := p
		target.Apply(patch)
		return patch, true, fmt.Sprintf("%s/%s -> %s/%s", p.Category, p.SubCategory, target.Category, target.SubCategory)
	})
}

func (s *CatalogServiceImpl) FillSpecifications(ctx context.Context, dryRun bool) (report dto.CorrectionReport, err error) {
	return s.correct(ctx, dryRun, "FillSpecifications", func(p domain.Product) (domain.ProductPatch, bool, string) {
		patch, changed := catalog.FillSpecifications(p)
		if !changed {
			return patch, false, ""
		}

		var parts []string
		if patch.Specifications != nil {
			parts = append(parts, fmt.Sprintf("specifications %d -> %d keys", len(p.Specifications), len(patch.Specifications)))
		}
		if patch.Sizes != nil {
			parts = append(parts, "sizes "+strings.Join(patch.Sizes, ","))
		}
		return patch, true, strings.Join(parts, "; ")
	})
}

func (s *CatalogServiceImpl) NormalizeColors(ctx context.Context, dryRun bool) (report dto.CorrectionReport, err error) {
	return s.correct(ctx, dryRun, "NormalizeColors", func(p domain.Product) (domain.ProductPatch, bool, string) {
		colors, changed := catalog.NormalizeColors(p.Colors)
		if !changed {
			return domain.ProductPatch{}, false, ""
		}

		names := make([]string, 0, len(colors))
		for _, c := range colors {
			names = append(names, fmt.Sprintf("%s=%s", c.Name, c.Code))
		}
		return domain.ProductPatch{Colors: colors}, true, strings.Join(names, ", ")
	})
}

// correct scans every product and writes each correction on its own, one
// round trip per document. The first failed write stops the scan and the
// report returned with the error lists what was already written.
func (s *CatalogServiceImpl) correct(ctx context.Context, dryRun bool, component string, rule correctionRule) (report dto.CorrectionReport, err error) {
	report = dto.CorrectionReport{DryRun: dryRun, Corrected: []dto.Correction{}}

	products, undecodable, err := s.productRepo.GetProducts(ctx, pkgdto.Filter{})
	if err != nil {
		return
	}
	report.Scanned = len(products)
	report.Undecodable = undecodable

	for _, p := range products {
		patch, changed, detail := rule(p)
		if !changed {
			continue
		}

		correction := dto.Correction{
			ProductID: p.ID,
			Name:      p.Name,
			Fields:    patch.Fields(),
			Detail:    detail,
		}

		if !dryRun {
			err = s.productRepo.UpdateProductFields(ctx, p.ID, patch, s.now())
			if err != nil {
				log.Ctx(ctx).Error().Err(err).Str("component", component).Str("product_id", p.ID).Msg("")
				return report, fmt.Errorf("updating product %s: %w", p.ID, err)
			}

			p.Apply(patch)
			s.publishProductChange(ctx, component, p, correction.Fields)
		}

		report.Corrected = append(report.Corrected, correction)
	}

	return report, nil
}

func (s *CatalogServiceImpl) publishProductChange(ctx context.Context, source string, p domain.Product, fields []string) {
	event := dto.ProductChangedEvent{
		ProductID:   p.ID,
		Name:        p.Name,
		Category:    p.Category,
		SubCategory: p.SubCategory,
		Fields:      fields,
		Source:      source,
		Specs:       p.Specifications,
	}

	// The document is already written; a lost event is logged, not fatal.
	if err := s.publisher.Publish(ctx, EventUpdateProduct, p.ID, event); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", source).Str("product_id", p.ID).Msg("product change event not published")
	}
}
