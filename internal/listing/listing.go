// Package listing derives the admin participant table: a filtered and
// sorted view over the fetched collection plus the per-status summary
// counts that back the dashboard indicators.
package listing

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/innovatec/registration-api/internal/domain"
)

// FilterAll is the sentinel that disables an exact-match filter.
const FilterAll = "all"

var ErrInvalidPaymentStatus = errors.New("invalid payment status")

type SortDirection int

const (
	SortUnset SortDirection = iota
	SortAscending
	SortDescending
)

type SortField string

const (
	SortByName          SortField = "name"
	SortByEmail         SortField = "email"
	SortByType          SortField = "type"
	SortByPaymentStatus SortField = "paymentStatus"
	SortByPaymentMethod SortField = "paymentMethod"
	SortByRegisteredAt  SortField = "registeredAt"
)

type SortSpec struct {
	Field     SortField
	Direction SortDirection
}

// Toggle cycles the direction on repeated selection of the same column
// (ascending, descending, then unset) and resets to ascending when a
// different column is selected.
func (s SortSpec) Toggle(field SortField) SortSpec {
	if s.Field != field || s.Direction == SortUnset {
		return SortSpec{Field: field, Direction: SortAscending}
	}
	if s.Direction == SortAscending {
		return SortSpec{Field: field, Direction: SortDescending}
	}

	return SortSpec{}
}

// Query holds the filter and sort criteria of the table. An empty
// filter value behaves like FilterAll.
type Query struct {
	Search        string
	Type          string
	Status        string
	PaymentMethod string
	Sort          SortSpec
}

// Counts are computed over the full unfiltered collection, so the
// indicators stay put while the user narrows the table.
type Counts struct {
	Total               int `json:"total"`
	Pending             int `json:"pending"`
	PendingVerification int `json:"pendingVerification"`
	Confirmed           int `json:"confirmed"`
	Rejected            int `json:"rejected"`
}

// DeriveView filters and sorts the records per the query and tallies
// the aggregate counts. All filters are AND-ed. The input slice is not
// modified and ties keep their relative input order.
func DeriveView(records []domain.Participant, q Query) ([]domain.Participant, Counts) {
	counts := countByStatus(records)

	view := make([]domain.Participant, 0, len(records))
	for _, p := range records {
		if matches(p, q) {
			view = append(view, p)
		}
	}

	if q.Sort.Field != "" && q.Sort.Direction != SortUnset {
		sort.SliceStable(view, func(i, j int) bool {
			if q.Sort.Direction == SortDescending {
				return less(view[j], view[i], q.Sort.Field)
			}
			return less(view[i], view[j], q.Sort.Field)
		})
	}

	return view, counts
}

func matches(p domain.Participant, q Query) bool {
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(p.FullName), needle) &&
			!strings.Contains(strings.ToLower(p.Email), needle) &&
			!strings.Contains(strings.ToLower(p.Institution), needle) {
			return false
		}
	}

	if filterActive(q.Type) && string(p.Type) != q.Type {
		return false
	}
	if filterActive(q.Status) && string(p.PaymentStatus) != q.Status {
		return false
	}
	if filterActive(q.PaymentMethod) && string(p.PaymentMethod) != q.PaymentMethod {
		return false
	}

	return true
}

func filterActive(value string) bool {
	return value != "" && value != FilterAll
}

func less(a, b domain.Participant, field SortField) bool {
	switch field {
	case SortByName:
		return a.FullName < b.FullName
	case SortByEmail:
		return a.Email < b.Email
	case SortByType:
		return a.Type < b.Type
	case SortByPaymentStatus:
		return a.PaymentStatus < b.PaymentStatus
	case SortByPaymentMethod:
		return a.PaymentMethod < b.PaymentMethod
	case SortByRegisteredAt:
		return a.RegisteredAt.Before(b.RegisteredAt)
	}

	return false
}

func countByStatus(records []domain.Participant) Counts {
	counts := Counts{Total: len(records)}
	for _, p := range records {
		switch p.PaymentStatus {
		case domain.StatusPending:
			counts.Pending++
		case domain.StatusPendingVerification:
			counts.PendingVerification++
		case domain.StatusConfirmed:
			counts.Confirmed++
		case domain.StatusRejected:
			counts.Rejected++
		}
	}

	return counts
}

// StatusChanger is the external collaborator that persists a payment
// status change.
type StatusChanger interface {
	ChangePaymentStatus(ctx context.Context, id uint, status domain.PaymentStatus) error
}

// Collection is the admin table's local copy of the participant
// records, owned exclusively by one table instance.
type Collection struct {
	records []domain.Participant
	changer StatusChanger
}

func NewCollection(records []domain.Participant, changer StatusChanger) *Collection {
	return &Collection{
		records: records,
		changer: changer,
	}
}

func (c *Collection) Records() []domain.Participant {
	return c.records
}

func (c *Collection) View(q Query) ([]domain.Participant, Counts) {
	return DeriveView(c.records, q)
}

// ChangeStatus updates the local copy optimistically, then invokes the
// remote collaborator. A remote failure does not roll the local update
// back; the next refresh reconciles.
func (c *Collection) ChangeStatus(ctx context.Context, id uint, status domain.PaymentStatus) error {
	if !status.Valid() {
		return ErrInvalidPaymentStatus
	}

	for i := range c.records {
		if c.records[i].ID == id {
			c.records[i].PaymentStatus = status
		}
	}

	if err := c.changer.ChangePaymentStatus(ctx, id, status); err != nil {
		return fmt.Errorf("c.changer.ChangePaymentStatus -> %w", err)
	}

	return nil
}

// RemoveLocally drops the record from the local collection only; it
// implies no server-side deletion.
func (c *Collection) RemoveLocally(id uint) {
	kept := c.records[:0]
	for _, p := range c.records {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	c.records = kept
}
