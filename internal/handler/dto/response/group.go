package response

import (
	"time"

	"tripmatch/internal/domain/trip"
	"tripmatch/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type GroupResponse struct {
	ID            string    `json:"id"`
	WeekStartDate string    `json:"weekStartDate"`
	WeekEndDate   string    `json:"weekEndDate"`
	Destination   string    `json:"destination"`
	Interest      string    `json:"interest"`
	Members       []string  `json:"members"`
	CreatedAt     time.Time `json:"createdAt"`
}

type PendingResponse struct {
	ID            string    `json:"id"`
	WeekStartDate string    `json:"weekStartDate"`
	WeekEndDate   string    `json:"weekEndDate"`
	Destination   string    `json:"destination"`
	Interest      string    `json:"interest"`
	CreatedAt     time.Time `json:"createdAt"`
}

// time.Time into a string field is a calendar date; time.Time into time.Time is copied as is.
var viewCopyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(time.Time).Format(trip.DateLayout), nil
			},
		},
	},
}

func FromGroupView(v *queries.GroupView) (*GroupResponse, error) {
	var resp GroupResponse
	if err := copier.CopyWithOption(&resp, v, viewCopyOption); err != nil {
		return nil, err
	}
	// copier shares slice backing arrays
	resp.Members = append([]string{}, v.Members...)
	return &resp, nil
}

func FromGroupViews(views []*queries.GroupView) ([]*GroupResponse, error) {
	res := make([]*GroupResponse, len(views))
	for i, v := range views {
		r, err := FromGroupView(v)
		if err != nil {
			return nil, err
		}
		res[i] = r
	}
	return res, nil
}

func FromPendingViews(views []*queries.PendingView) ([]*PendingResponse, error) {
	res := make([]*PendingResponse, len(views))
	for i, v := range views {
		var r PendingResponse
		if err := copier.CopyWithOption(&r, v, viewCopyOption); err != nil {
			return nil, err
		}
		res[i] = &r
	}
	return res, nil
}
