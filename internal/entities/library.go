package entities

// CopyStatus tracks the circulation state of a single physical copy.
type CopyStatus string

const (
	CopyStatusAvailable CopyStatus = "Available"
	CopyStatusOnLoan    CopyStatus = "On Loan"
	CopyStatusReserved  CopyStatus = "Reserved"
)

type Publisher struct {
	ID      uint   `gorm:"primaryKey;column:publisher_id" json:"publisher_id"`
	Name    string `gorm:"index;size:256" json:"name"`
	Address string `gorm:"size:512" json:"address,omitempty"`
	Phone   string `gorm:"size:32" json:"phone,omitempty"`
}

type Author struct {
	ID        uint   `gorm:"primaryKey;column:author_id" json:"author_id"`
	FirstName string `gorm:"size:100" json:"first_name"`
	LastName  string `gorm:"index;size:100" json:"last_name"`
}

// Book is keyed by ISBN. PublisherID is a weak reference: the referenced
// publisher may be deleted independently, consistency is maintained by the
// cascade engine rather than database-level constraints.
type Book struct {
	ISBN            int64  `gorm:"primaryKey;autoIncrement:false;column:isbn" json:"isbn"`
	Title           string `gorm:"index;size:512" json:"title"`
	Genre           string `gorm:"index;size:100" json:"genre,omitempty"`
	PublisherID     uint   `gorm:"index" json:"publisher_id,omitempty"`
	PublicationYear int    `json:"publication_year,omitempty"`
}

// BookAuthor links books and authors many-to-many.
type BookAuthor struct {
	ISBN     int64 `gorm:"primaryKey;autoIncrement:false;column:isbn" json:"isbn"`
	AuthorID uint  `gorm:"primaryKey;autoIncrement:false;column:author_id" json:"author_id"`
}

type Branch struct {
	ID       uint   `gorm:"primaryKey;column:branch_id" json:"branch_id"`
	Name     string `gorm:"index;size:256" json:"name"`
	Location string `gorm:"size:512" json:"location,omitempty"`
}

type Copy struct {
	ID       uint       `gorm:"primaryKey;column:copy_id" json:"copy_id"`
	ISBN     int64      `gorm:"index;column:isbn" json:"isbn"`
	BranchID uint       `gorm:"index" json:"branch_id"`
	Status   CopyStatus `gorm:"size:20;default:'Available'" json:"status"`
}

type Member struct {
	ID             uint   `gorm:"primaryKey;column:member_id" json:"member_id"`
	FirstName      string `gorm:"size:100" json:"first_name"`
	LastName       string `gorm:"index;size:100" json:"last_name"`
	Email          string `gorm:"uniqueIndex;size:255" json:"email"`
	Address        string `gorm:"size:512" json:"address,omitempty"`
	Phone          string `gorm:"size:32" json:"phone,omitempty"`
	DateRegistered Date   `gorm:"type:date" json:"date_registered"`
}

// Loan records a copy checked out by a member. ReturnDate is nil while the
// loan is open; FineAmount is nil unless a fine was assessed.
type Loan struct {
	ID         uint     `gorm:"primaryKey;column:loan_id" json:"loan_id"`
	CopyID     uint     `gorm:"index" json:"copy_id"`
	MemberID   uint     `gorm:"index" json:"member_id"`
	IssueDate  Date     `gorm:"type:date;index" json:"issue_date"`
	DueDate    Date     `gorm:"type:date" json:"due_date"`
	ReturnDate *Date    `gorm:"type:date" json:"return_date,omitempty"`
	FineAmount *float64 `json:"fine_amount,omitempty"`
}

func (Publisher) TableName() string {
	return "publishers"
}

func (Author) TableName() string {
	return "authors"
}

func (Book) TableName() string {
	return "books"
}

func (BookAuthor) TableName() string {
	return "book_authors"
}

func (Branch) TableName() string {
	return "branches"
}

func (Copy) TableName() string {
	return "copies"
}

func (Member) TableName() string {
	return "members"
}

func (Loan) TableName() string {
	return "loans"
}
