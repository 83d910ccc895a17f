package category_test

import (
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hanifadr/reimbursement-hub/internal"
	"github.com/hanifadr/reimbursement-hub/internal/category"
	"github.com/hanifadr/reimbursement-hub/internal/category/memory"
	categoryDatamodel "github.com/hanifadr/reimbursement-hub/internal/core/datamodel/category"
	"github.com/hanifadr/reimbursement-hub/internal/user"
)

func TestCategoryService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Category Service Suite")
}

var _ = Describe("CategoryService", func() {
	var (
		repo    *memory.CategoryRepository
		service *category.Service

		employee = &user.User{ID: "usr_001", Role: user.RoleEmployee}
		hrUser   = &user.User{ID: "usr_002", Role: user.RoleHR}
	)

	BeforeEach(func() {
		repo = memory.NewCategoryRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = category.NewService(repo, logger)

		for _, c := range []*categoryDatamodel.ReimbursementCategory{
			{ID: "cat_001", Name: "Work Equipment", ShortDescription: "Devices", IsActive: true},
			{ID: "cat_002", Name: "Old Category", ShortDescription: "Retired", IsActive: false},
		} {
			Expect(repo.Create(c)).To(Succeed())
		}
	})

	Describe("GetCategories", func() {
		It("should hide inactive categories from employees", func() {
			result, err := service.GetCategories(employee, true)

			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(HaveLen(1))
			Expect(result[0].ID).To(Equal("cat_001"))
		})

		It("should show inactive categories to hr on request", func() {
			result, err := service.GetCategories(hrUser, true)

			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(HaveLen(2))
		})

		It("should show hr only active categories by default", func() {
			result, err := service.GetCategories(hrUser, false)

			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(HaveLen(1))
		})
	})

	Describe("IsActiveCategory", func() {
		It("should report active, inactive and unknown ids", func() {
			Expect(service.IsActiveCategory("cat_001")).To(BeTrue())
			Expect(service.IsActiveCategory("cat_002")).To(BeFalse())
			Expect(service.IsActiveCategory("cat_999")).To(BeFalse())
		})
	})

	Describe("CategoryNames", func() {
		It("should include inactive categories so history still resolves", func() {
			names, err := service.CategoryNames()

			Expect(err).ToNot(HaveOccurred())
			Expect(names).To(HaveKeyWithValue("cat_002", "Old Category"))
		})
	})

	Describe("CreateCategory", func() {
		dto := category.CreateCategoryDTO{
			Name:             "Home Office",
			ShortDescription: "Desks and chairs",
		}

		It("should let hr create an active category", func() {
			created, err := service.CreateCategory(hrUser, dto)

			Expect(err).ToNot(HaveOccurred())
			Expect(created.IsActive).To(BeTrue())
			Expect(created.CreatedBy).To(Equal(hrUser.ID))
			Expect(created.ID).ToNot(BeEmpty())
		})

		It("should refuse non-hr actors", func() {
			_, err := service.CreateCategory(employee, dto)

			Expect(err).To(MatchError(internal.ErrRoleNotAllowed))
		})

		It("should reject a missing name", func() {
			_, err := service.CreateCategory(hrUser, category.CreateCategoryDTO{ShortDescription: "x"})

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("SetActive", func() {
		It("should deactivate and reactivate a category", func() {
			updated, err := service.SetActive(hrUser, "cat_001", false)
			Expect(err).ToNot(HaveOccurred())
			Expect(updated.IsActive).To(BeFalse())
			Expect(service.IsActiveCategory("cat_001")).To(BeFalse())

			updated, err = service.SetActive(hrUser, "cat_001", true)
			Expect(err).ToNot(HaveOccurred())
			Expect(updated.IsActive).To(BeTrue())
		})

		It("should refuse non-hr actors", func() {
			_, err := service.SetActive(employee, "cat_001", false)

			Expect(err).To(MatchError(internal.ErrRoleNotAllowed))
		})

		It("should return not found for unknown ids", func() {
			_, err := service.SetActive(hrUser, "cat_999", false)

			Expect(err).To(MatchError(internal.ErrCategoryNotFound))
		})
	})

	Describe("store conflicts", func() {
		It("should reject duplicate category ids", func() {
			err := repo.Create(&categoryDatamodel.ReimbursementCategory{ID: "cat_001", Name: "Duplicate"})

			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeDuplicateID))
		})
	})
})
