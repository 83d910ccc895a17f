// Package seed holds the built-in sample dataset: four users across
// the three roles, four categories and six expenses spanning every
// lifecycle bucket. It exists so the server is demonstrable without
// any persistence behind it.
package seed

import (
	"time"

	categoryDatamodel "github.com/hanifadr/reimbursement-hub/internal/core/datamodel/category"
	expenseDatamodel "github.com/hanifadr/reimbursement-hub/internal/core/datamodel/expense"
	userDatamodel "github.com/hanifadr/reimbursement-hub/internal/core/datamodel/user"
)

type Dataset struct {
	Users      []*userDatamodel.User                      `json:"users"`
	Categories []*categoryDatamodel.ReimbursementCategory `json:"categories"`
	Expenses   []*expenseDatamodel.Expense                `json:"expenses"`
}

type UserWriter interface {
	Create(u *userDatamodel.User) error
}

type CategoryWriter interface {
	Create(c *categoryDatamodel.ReimbursementCategory) error
}

type ExpenseWriter interface {
	Create(e *expenseDatamodel.Expense) error
}

// Load inserts the sample dataset into the given stores.
func Load(users UserWriter, categories CategoryWriter, expenses ExpenseWriter) error {
	data := Sample()

	for _, u := range data.Users {
		if err := users.Create(u); err != nil {
			return err
		}
	}
	for _, c := range data.Categories {
		if err := categories.Create(c); err != nil {
			return err
		}
	}
	for _, e := range data.Expenses {
		if err := expenses.Create(e); err != nil {
			return err
		}
	}
	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

// Sample builds a fresh copy of the dataset. Callers get their own
// instances, so mutating loaded data never bleeds between stores.
func Sample() Dataset {
	return Dataset{
		Users:      sampleUsers(),
		Categories: sampleCategories(),
		Expenses:   sampleExpenses(),
	}
}

func sampleUsers() []*userDatamodel.User {
	return []*userDatamodel.User{
		{
			ID:         "usr_001",
			Name:       "Alex Morgan",
			Email:      "alex@company.com",
			Role:       "employee",
			Department: "Marketing",
			CreatedAt:  date(2023, time.January, 2),
		},
		{
			ID:         "usr_002",
			Name:       "Jamie Chen",
			Email:      "jamie@company.com",
			Role:       "hr",
			Department: "Human Resources",
			CreatedAt:  date(2023, time.January, 2),
		},
		{
			ID:         "usr_003",
			Name:       "Taylor Smith",
			Email:      "taylor@company.com",
			Role:       "accountant",
			Department: "Finance",
			CreatedAt:  date(2023, time.January, 2),
		},
		{
			ID:         "usr_004",
			Name:       "Sam Johnson",
			Email:      "sam@company.com",
			Role:       "employee",
			Department: "Engineering",
			CreatedAt:  date(2023, time.January, 9),
		},
	}
}

func sampleCategories() []*categoryDatamodel.ReimbursementCategory {
	return []*categoryDatamodel.ReimbursementCategory{
		{
			ID:                      "cat_001",
			Name:                    "Work Equipment",
			ShortDescription:        "Devices and tools for remote work",
			FullDescription:         "This category covers purchases of necessary equipment for effective remote work including monitors, keyboards, mice, headsets, and ergonomic furniture.",
			ReimbursementConditions: "Equipment must be necessary for work duties. Maximum reimbursement of $500 per calendar year. Original receipt required.",
			CreatedAt:               date(2023, time.January, 15),
			CreatedBy:               "usr_002",
			IsActive:                true,
			UpdatedAt:               date(2023, time.January, 15),
		},
		{
			ID:                      "cat_002",
			Name:                    "Professional Development",
			ShortDescription:        "Courses, books, and learning materials",
			FullDescription:         "Expenses related to improving professional skills including online courses, books, conference tickets, workshops, and certifications related to your current role or career growth.",
			ReimbursementConditions: "Materials must be relevant to current role or approved career path. Pre-approval required for expenses over $200. Proof of completion for courses.",
			CreatedAt:               date(2023, time.February, 20),
			CreatedBy:               "usr_002",
			IsActive:                true,
			UpdatedAt:               date(2023, time.February, 20),
		},
		{
			ID:                      "cat_003",
			Name:                    "Travel & Transportation",
			ShortDescription:        "Business trips and commuting expenses",
			FullDescription:         "Covers necessary travel expenses including flights, accommodation, ground transportation, and meals during business trips. Also includes commuting expenses for required office visits.",
			ReimbursementConditions: "Pre-approval required for all trips. Economy class for flights under 5 hours. Per diem rates apply for meals. Itemized receipts required.",
			CreatedAt:               date(2023, time.March, 10),
			CreatedBy:               "usr_002",
			IsActive:                true,
			UpdatedAt:               date(2023, time.March, 10),
		},
		{
			ID:                      "cat_004",
			Name:                    "Software Subscriptions",
			ShortDescription:        "Work-related digital tools and services",
			FullDescription:         "Covers subscriptions to necessary software tools, digital services, and premium plans for services used for work purposes that are not provided by the company.",
			ReimbursementConditions: "Must be directly related to job duties. Annual subscriptions preferred over monthly when possible. Maximum of 5 subscriptions per employee.",
			CreatedAt:               date(2023, time.April, 5),
			CreatedBy:               "usr_002",
			IsActive:                true,
			UpdatedAt:               date(2023, time.April, 5),
		},
	}
}

func sampleExpenses() []*expenseDatamodel.Expense {
	return []*expenseDatamodel.Expense{
		{
			ID:            "exp_001",
			EmployeeID:    "usr_001",
			CategoryID:    "cat_001",
			AmountCents:   24999,
			Description:   "Ergonomic office chair for home office",
			ReceiptURL:    "uploads/receipts/exp_001.pdf",
			Status:        "approved",
			SubmittedDate: datePtr(2023, time.May, 15),
			ReviewedDate:  datePtr(2023, time.May, 17),
			ReviewedBy:    "usr_002",
			CreatedAt:     date(2023, time.May, 15),
			UpdatedAt:     date(2023, time.May, 17),
		},
		{
			ID:            "exp_002",
			EmployeeID:    "usr_001",
			CategoryID:    "cat_002",
			AmountCents:   19900,
			Description:   "Online course: Advanced UX Design Principles",
			ReceiptURL:    "uploads/receipts/exp_002.pdf",
			Status:        "needs_revision",
			SubmittedDate: datePtr(2023, time.May, 18),
			ReviewedDate:  datePtr(2023, time.May, 19),
			ReviewedBy:    "usr_002",
			Comments: []expenseDatamodel.Comment{
				{
					ID:        "cmt_001",
					UserID:    "usr_001",
					UserName:  "Alex Morgan",
					UserRole:  "employee",
					Message:   "I've attached the receipt from the online course. Please let me know if you need any additional information.",
					Timestamp: at(2023, time.May, 18, 14, 30),
				},
				{
					ID:        "cmt_002",
					UserID:    "usr_002",
					UserName:  "Jamie Chen",
					UserRole:  "hr",
					Message:   "Could you provide the certificate of completion as well? It's required for our records.",
					Timestamp: at(2023, time.May, 19, 9, 15),
				},
				{
					ID:        "cmt_003",
					UserID:    "usr_001",
					UserName:  "Alex Morgan",
					UserRole:  "employee",
					Message:   "Certainly! I've just uploaded the completion certificate to the expense report.",
					Timestamp: at(2023, time.May, 19, 11, 45),
				},
			},
			CreatedAt: date(2023, time.May, 18),
			UpdatedAt: date(2023, time.May, 19),
		},
		{
			ID:            "exp_003",
			EmployeeID:    "usr_004",
			CategoryID:    "cat_001",
			AmountCents:   34999,
			Description:   "27-inch 4K monitor for remote development work",
			ReceiptURL:    "uploads/receipts/exp_003.jpg",
			Status:        "under_review",
			SubmittedDate: datePtr(2023, time.June, 10),
			Comments: []expenseDatamodel.Comment{
				{
					ID:        "cmt_004",
					UserID:    "usr_004",
					UserName:  "Sam Johnson",
					UserRole:  "employee",
					Message:   "This monitor was necessary as my previous one stopped working.",
					Timestamp: at(2023, time.June, 10, 15, 20),
				},
				{
					ID:        "cmt_005",
					UserID:    "usr_002",
					UserName:  "Jamie Chen",
					UserRole:  "hr",
					Message:   "Thanks for the information. Was your previous monitor company-issued or personal?",
					Timestamp: at(2023, time.June, 11, 10, 5),
				},
			},
			CreatedAt: date(2023, time.June, 10),
			UpdatedAt: date(2023, time.June, 11),
		},
		{
			ID:            "exp_004",
			EmployeeID:    "usr_004",
			CategoryID:    "cat_004",
			AmountCents:   1599,
			Description:   "Monthly subscription to productivity tool",
			ReceiptURL:    "uploads/receipts/exp_004.pdf",
			Status:        "submitted",
			SubmittedDate: datePtr(2023, time.June, 15),
			CreatedAt:     date(2023, time.June, 15),
			UpdatedAt:     date(2023, time.June, 15),
		},
		{
			ID:            "exp_005",
			EmployeeID:    "usr_001",
			CategoryID:    "cat_003",
			AmountCents:   87542,
			Description:   "Flight and hotel for industry conference",
			ReceiptURL:    "uploads/receipts/exp_005.pdf",
			Status:        "paid",
			SubmittedDate: datePtr(2023, time.April, 1),
			ReviewedDate:  datePtr(2023, time.April, 3),
			ReviewedBy:    "usr_002",
			PaidDate:      datePtr(2023, time.April, 15),
			CreatedAt:     date(2023, time.April, 1),
			UpdatedAt:     date(2023, time.April, 15),
		},
		{
			ID:          "exp_006",
			EmployeeID:  "usr_001",
			CategoryID:  "cat_002",
			AmountCents: 4999,
			Description: "Book: Design Systems Handbook",
			Status:      "draft",
			CreatedAt:   date(2023, time.June, 20),
			UpdatedAt:   date(2023, time.June, 20),
		},
	}
}

// DefaultActorEmail is the account the session resolves to when no
// override is configured. It matches the first employee in the
// dataset.
const DefaultActorEmail = "alex@company.com"
