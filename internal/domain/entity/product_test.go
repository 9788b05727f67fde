package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_StatusKeepsApprovalInSync(t *testing.T) {
	statuses := []ProductStatus{
		ProductStatusPending,
		ProductStatusApproved,
		ProductStatusRejected,
		ProductStatusInactive,
	}

	for _, status := range statuses {
		t.Run(string(status), func(t *testing.T) {
			p := &Product{IsApproved: status != ProductStatusApproved}
			p.SetStatus(status)
			assert.Equal(t, status == ProductStatusApproved, p.IsApproved)
		})
	}
}

func TestProduct_ApproveClearsRejectionReason(t *testing.T) {
	p := &Product{}
	p.Reject("")
	assert.Equal(t, ProductStatusRejected, p.Status)
	assert.Equal(t, DefaultRejectionReason, p.RejectionReason)
	assert.False(t, p.IsApproved)

	p.Approve()
	assert.Equal(t, ProductStatusApproved, p.Status)
	assert.True(t, p.IsApproved)
	assert.Empty(t, p.RejectionReason)
}

func TestProduct_RejectKeepsGivenReason(t *testing.T) {
	p := &Product{}
	p.Reject("Photos floues")
	assert.Equal(t, "Photos floues", p.RejectionReason)
}

func TestProduct_RequireReview(t *testing.T) {
	p := &Product{}
	p.Approve()
	p.RequireReview()

	assert.Equal(t, ProductStatusPending, p.Status)
	assert.False(t, p.IsApproved)
}

func TestProduct_IsPubliclyVisible(t *testing.T) {
	p := &Product{IsActive: true}
	assert.False(t, p.IsPubliclyVisible())

	p.Approve()
	assert.True(t, p.IsPubliclyVisible())

	p.IsActive = false
	assert.False(t, p.IsPubliclyVisible())
}
