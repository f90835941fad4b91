// Package seed generates randomized sample data across every table, for demos
// and local development. Generation is additive and idempotent-ish: each run
// inserts a small batch of fresh rows, skipping values that already exist.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openshelf/librarian/internal/database/catalog"
	"github.com/openshelf/librarian/internal/database/circulation"
	"github.com/openshelf/librarian/internal/entities"
)

var (
	firstNames = []string{"Oliver", "Emma", "Liam", "Ava", "Noah", "Sophia", "Mason", "Isabella"}
	lastNames  = []string{"Brown", "Wilson", "Taylor", "Anderson", "Thomas", "Moore", "Martin", "Lee"}
	genres     = []string{"Fiction", "Science", "History", "Mystery", "Romance", "Non-Fiction"}
)

// Result reports how many rows each table gained.
type Result struct {
	Publishers int `json:"publishers"`
	Authors    int `json:"authors"`
	Books      int `json:"books"`
	Branches   int `json:"branches"`
	Members    int `json:"members"`
	Copies     int `json:"copies"`
	Loans      int `json:"loans"`
}

// Seeder writes sample data through the catalog and circulation repositories.
type Seeder struct {
	catalog     *catalog.Repository
	circulation *circulation.Repository
	rng         *rand.Rand
}

// NewSeeder creates a seeder over db.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{
		catalog:     catalog.NewRepository(db),
		circulation: circulation.NewRepository(db),
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Seed populates every table with a batch of sample rows and reports the
// per-table insert counts.
func (s *Seeder) Seed() (*Result, error) {
	result := &Result{}

	if err := s.seedPublishers(result); err != nil {
		return nil, err
	}
	if err := s.seedAuthors(result); err != nil {
		return nil, err
	}
	if err := s.seedBranches(result); err != nil {
		return nil, err
	}
	if err := s.seedMembers(result); err != nil {
		return nil, err
	}
	if err := s.seedBooks(result); err != nil {
		return nil, err
	}
	if err := s.seedCopies(result); err != nil {
		return nil, err
	}
	if err := s.seedLoans(result); err != nil {
		return nil, err
	}

	return result, nil
}

func (s *Seeder) seedPublishers(result *Result) error {
	for i := 0; i < 3; i++ {
		name := fmt.Sprintf("Publisher %s", uuid.NewString()[:8])
		exists, err := s.catalog.PublisherExistsByName(name)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		publisher := &entities.Publisher{
			Name:    name,
			Address: fmt.Sprintf("%d Publisher Rd", s.rng.Intn(999)+1),
			Phone:   fmt.Sprintf("555-%04d", s.rng.Intn(9000)+1000),
		}
		if err := s.catalog.CreatePublisher(publisher); err != nil {
			return err
		}
		result.Publishers++
	}
	return nil
}

func (s *Seeder) seedAuthors(result *Result) error {
	for i := 0; i < 6; i++ {
		firstName := firstNames[s.rng.Intn(len(firstNames))]
		lastName := lastNames[s.rng.Intn(len(lastNames))]
		exists, err := s.catalog.AuthorExistsByName(firstName, lastName)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		author := &entities.Author{FirstName: firstName, LastName: lastName}
		if err := s.catalog.CreateAuthor(author); err != nil {
			return err
		}
		result.Authors++
	}
	return nil
}

func (s *Seeder) seedBranches(result *Result) error {
	for i := 0; i < 2; i++ {
		name := fmt.Sprintf("Branch %s", uuid.NewString()[:6])
		exists, err := s.circulation.BranchExistsByName(name)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		branch := &entities.Branch{Name: name, Location: "Local"}
		if err := s.circulation.CreateBranch(branch); err != nil {
			return err
		}
		result.Branches++
	}
	return nil
}

func (s *Seeder) seedMembers(result *Result) error {
	for i := 0; i < 6; i++ {
		firstName := firstNames[s.rng.Intn(len(firstNames))]
		lastName := lastNames[s.rng.Intn(len(lastNames))]
		email := fmt.Sprintf("%s.%s.%s@example.com",
			strings.ToLower(firstName), strings.ToLower(lastName), uuid.NewString()[:6])
		exists, err := s.circulation.MemberExistsByEmail(email)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		member := &entities.Member{
			FirstName:      firstName,
			LastName:       lastName,
			Email:          email,
			Address:        fmt.Sprintf("%d Seed St", s.rng.Intn(999)+1),
			Phone:          fmt.Sprintf("555-%04d", s.rng.Intn(9000)+1000),
			DateRegistered: entities.Today(),
		}
		if err := s.circulation.CreateMember(member); err != nil {
			return err
		}
		result.Members++
	}
	return nil
}

func (s *Seeder) seedBooks(result *Result) error {
	publishers, err := s.catalog.GetAllPublishers()
	if err != nil {
		return err
	}
	if len(publishers) == 0 {
		return nil
	}

	for i := 0; i < 8; i++ {
		// Keep ISBNs inside the signed 32-bit range so they survive INT columns.
		isbn := int64(s.rng.Int31n(2147483647-1000000000) + 1000000000)
		exists, err := s.catalog.BookExists(isbn)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		book := &entities.Book{
			ISBN:            isbn,
			Title:           fmt.Sprintf("Book %s", uuid.NewString()[:6]),
			Genre:           genres[s.rng.Intn(len(genres))],
			PublisherID:     publishers[s.rng.Intn(len(publishers))].ID,
			PublicationYear: s.rng.Intn(2024-1990+1) + 1990,
		}
		if err := s.catalog.CreateBook(book); err != nil {
			return err
		}
		result.Books++
	}
	return nil
}

func (s *Seeder) seedCopies(result *Result) error {
	books, err := s.catalog.GetAllBooks()
	if err != nil {
		return err
	}
	branches, err := s.circulation.GetAllBranches()
	if err != nil {
		return err
	}
	if len(books) == 0 || len(branches) == 0 {
		return nil
	}

	for i := 0; i < 12; i++ {
		isbn := books[s.rng.Intn(len(books))].ISBN
		branchID := branches[s.rng.Intn(len(branches))].ID

		// A quarter of copies start out reserved.
		status := entities.CopyStatusAvailable
		if s.rng.Float64() < 0.25 {
			status = entities.CopyStatusReserved
		}

		exists, err := s.circulation.CopyExists(isbn, branchID, status)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		copy := &entities.Copy{ISBN: isbn, BranchID: branchID, Status: status}
		if err := s.circulation.CreateCopy(copy); err != nil {
			return err
		}
		result.Copies++
	}
	return nil
}

func (s *Seeder) seedLoans(result *Result) error {
	available, err := s.circulation.GetCopiesByStatus(entities.CopyStatusAvailable)
	if err != nil {
		return err
	}
	members, err := s.circulation.GetAllMembers()
	if err != nil {
		return err
	}
	if len(members) == 0 {
		return nil
	}

	s.rng.Shuffle(len(available), func(i, j int) {
		available[i], available[j] = available[j], available[i]
	})
	if len(available) > 8 {
		available = available[:8]
	}

	for _, copy := range available {
		member := members[s.rng.Intn(len(members))]

		issueDate := entities.Today().AddDays(-s.rng.Intn(61))
		loanLength := s.rng.Intn(28-7+1) + 7
		dueDate := issueDate.AddDays(loanLength)

		loan := &entities.Loan{
			CopyID:    copy.ID,
			MemberID:  member.ID,
			IssueDate: issueDate,
			DueDate:   dueDate,
		}

		// Roughly half the seeded loans come back, some of them late.
		if s.rng.Float64() < 0.45 {
			returnDate := issueDate.AddDays(s.rng.Intn(loanLength+12) + 1)
			loan.ReturnDate = &returnDate

			if returnDate.After(dueDate.Time) {
				daysLate := int(returnDate.Sub(dueDate.Time).Hours() / 24)
				fine := float64(daysLate) * (0.5 + s.rng.Float64()*1.5)
				fine = float64(int(fine*100+0.5)) / 100
				loan.FineAmount = &fine
			}
		}

		if err := s.circulation.CreateLoan(loan); err != nil {
			return err
		}
		result.Loans++

		// CreateLoan marks the copy "On Loan"; returned loans free it again.
		if loan.ReturnDate != nil {
			if err := s.circulation.SetCopyStatus(copy.ID, entities.CopyStatusAvailable); err != nil {
				return err
			}
		}
	}
	return nil
}
