package memstore

import (
	"time"

	"github.com/zaxiang/Mini-Amazon/models"
)

type memState struct {
	offerings     map[uint]*models.Offering
	users         map[uint]*models.User
	carts         map[uint]*models.Cart
	cartByUser    map[uint]uint                       // userID -> cartID
	cartLines     map[uint]map[uint]*models.CartLine  // cartID -> offeringID
	orders        map[uint]*models.Order              // lines kept separately
	orderLines    map[uint]map[uint]*models.OrderLine // orderID -> offeringID
	reviews       map[uint]*models.Review
	reviewVotes   map[uint]map[uint]bool // reviewID -> userID
	feedbacks     map[uint]*models.Feedback
	feedbackVotes map[uint]map[uint]bool

	lastID uint // one sequence across all tables
}

func newState() *memState {
	return &memState{
		offerings:     make(map[uint]*models.Offering),
		users:         make(map[uint]*models.User),
		carts:         make(map[uint]*models.Cart),
		cartByUser:    make(map[uint]uint),
		cartLines:     make(map[uint]map[uint]*models.CartLine),
		orders:        make(map[uint]*models.Order),
		orderLines:    make(map[uint]map[uint]*models.OrderLine),
		reviews:       make(map[uint]*models.Review),
		reviewVotes:   make(map[uint]map[uint]bool),
		feedbacks:     make(map[uint]*models.Feedback),
		feedbackVotes: make(map[uint]map[uint]bool),
	}
}

func (st *memState) nextID() uint {
	st.lastID++
	return st.lastID
}

func (st *memState) clone() *memState {
	out := newState()
	out.lastID = st.lastID
	for id, o := range st.offerings {
		cp := *o
		out.offerings[id] = &cp
	}
	for id, u := range st.users {
		cp := *u
		out.users[id] = &cp
	}
	for id, c := range st.carts {
		cp := *c
		out.carts[id] = &cp
	}
	for uid, cid := range st.cartByUser {
		out.cartByUser[uid] = cid
	}
	for cid, lines := range st.cartLines {
		out.cartLines[cid] = make(map[uint]*models.CartLine, len(lines))
		for oid, l := range lines {
			cp := *l
			out.cartLines[cid][oid] = &cp
		}
	}
	for id, o := range st.orders {
		cp := *o
		cp.FulfilledAt = copyTime(o.FulfilledAt)
		out.orders[id] = &cp
	}
	for oid, lines := range st.orderLines {
		out.orderLines[oid] = make(map[uint]*models.OrderLine, len(lines))
		for offid, l := range lines {
			cp := *l
			cp.FulfilledAt = copyTime(l.FulfilledAt)
			out.orderLines[oid][offid] = &cp
		}
	}
	for id, r := range st.reviews {
		cp := *r
		out.reviews[id] = &cp
	}
	for rid, votes := range st.reviewVotes {
		out.reviewVotes[rid] = make(map[uint]bool, len(votes))
		for uid := range votes {
			out.reviewVotes[rid][uid] = true
		}
	}
	for id, f := range st.feedbacks {
		cp := *f
		out.feedbacks[id] = &cp
	}
	for fid, votes := range st.feedbackVotes {
		out.feedbackVotes[fid] = make(map[uint]bool, len(votes))
		for uid := range votes {
			out.feedbackVotes[fid][uid] = true
		}
	}
	return out
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}
