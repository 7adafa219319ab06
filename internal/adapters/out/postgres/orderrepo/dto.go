// Package orderrepo persists the order aggregate. It maps the domain model
// to its relational shape and back, and guards every update with the
// aggregate version so concurrent workflow steps cannot overwrite each other.
package orderrepo

import (
	"time"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database row behind an order aggregate. Prices are stored
// as integer cents, enums as their integer values, and the work code is
// nullable because it only exists from the payment gate on. The unique index
// on the query code backs duplicate detection at insert time; the partial
// unique index on the work code lives in the migrations because it needs a
// WHERE clause.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClientID        uuid.UUID  `gorm:"type:uuid;index"`
	BDEID           *uuid.UUID `gorm:"type:uuid;column:bde_id"`
	Topic           string
	Subject         string
	Urgency         int
	Deadline        time.Time
	QueryCode       string  `gorm:"uniqueIndex:uq_orders_query_code"`
	WorkCode        *string `gorm:"column:work_code"`
	Status          int     `gorm:"index"`
	AssignedWriter  *uuid.UUID `gorm:"type:uuid;index"`
	BasicPrice      int64
	Discount        int64
	TotalPrice      int64
	DeadlineAlerted bool
	Version         int
}

// TableName specifies the database table name for order rows.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var bdeID *uuid.UUID
	if id := aggregate.BDE(); id != nil {
		raw := id.Bytes()
		bdeID = &raw
	}

	var writerID *uuid.UUID
	if id := aggregate.AssignedWriter(); id != nil {
		raw := id.Bytes()
		writerID = &raw
	}

	var workCode *string
	if code := aggregate.WorkCode(); code != nil {
		raw := code.String()
		workCode = &raw
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		ClientID:        aggregate.ClientID().Bytes(),
		BDEID:           bdeID,
		Topic:           aggregate.Topic(),
		Subject:         aggregate.Subject(),
		Urgency:         int(aggregate.Urgency()),
		Deadline:        aggregate.Deadline(),
		QueryCode:       aggregate.QueryCode().String(),
		WorkCode:        workCode,
		Status:          int(aggregate.Status()),
		AssignedWriter:  writerID,
		BasicPrice:      aggregate.BasicPrice().Cents(),
		Discount:        aggregate.Discount().Cents(),
		TotalPrice:      aggregate.TotalPrice().Cents(),
		DeadlineAlerted: aggregate.DeadlineAlerted(),
		Version:         aggregate.Version(),
	}
}

// toDomain converts a database row back to an order aggregate. RestoreOrder
// re-runs the cross-field checks, so a corrupt row surfaces as an error
// instead of an invalid aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	var bdeID *kernel.UUID
	if dto.BDEID != nil {
		restored, bdeErr := kernel.UUIDFromBytes((*dto.BDEID)[:])
		if bdeErr != nil {
			return nil, bdeErr
		}
		bdeID = &restored
	}

	var writerID *kernel.UUID
	if dto.AssignedWriter != nil {
		restored, writerErr := kernel.UUIDFromBytes((*dto.AssignedWriter)[:])
		if writerErr != nil {
			return nil, writerErr
		}
		writerID = &restored
	}

	queryCode, err := kernel.RefCodeFromString(dto.QueryCode)
	if err != nil {
		return nil, err
	}

	var workCode *kernel.RefCode
	if dto.WorkCode != nil {
		restored, codeErr := kernel.RefCodeFromString(*dto.WorkCode)
		if codeErr != nil {
			return nil, codeErr
		}
		workCode = &restored
	}

	basicPrice, err := kernel.NewMoney(dto.BasicPrice)
	if err != nil {
		return nil, err
	}

	discount, err := kernel.NewMoney(dto.Discount)
	if err != nil {
		return nil, err
	}

	totalPrice, err := kernel.NewMoney(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		clientID,
		bdeID,
		dto.Topic,
		dto.Subject,
		order.Urgency(dto.Urgency),
		dto.Deadline,
		queryCode,
		workCode,
		order.Status(dto.Status),
		writerID,
		basicPrice,
		discount,
		totalPrice,
		dto.DeadlineAlerted,
		dto.Version,
	)
}
