package services

import (
	"errors"

	"hunthub/internal/store"
)

var (
	// ErrSelfVote means the voter is the product's hunter.
	ErrSelfVote = errors.New("hunters cannot vote on their own products")
	// ErrAlreadyVoted means a vote for this (user, product) pair exists.
	ErrAlreadyVoted = errors.New("already voted on this product")
)

// VoteService is the vote ledger: it owns the set of (user, product) vote
// facts and the rules around creating them.
type VoteService struct {
	products store.ProductRepository
	votes    store.VoteRepository
}

func NewVoteService(products store.ProductRepository, votes store.VoteRepository) *VoteService {
	return &VoteService{products: products, votes: votes}
}

// Cast records an upvote. Returns store.ErrNotFound for an unknown product,
// ErrSelfVote for the hunter's own product and ErrAlreadyVoted for a
// duplicate. A successful cast has already incremented the product's
// votes_total (the repository records both in one transaction).
func (s *VoteService) Cast(voterID, productID uint) error {
	product, err := s.products.ByID(productID)
	if err != nil {
		return err
	}
	if product.HunterID == voterID {
		return ErrSelfVote
	}

	if err := s.votes.Record(voterID, productID); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return ErrAlreadyVoted
		}
		return err
	}
	return nil
}

// HasVoted reports whether the user already voted on the product.
func (s *VoteService) HasVoted(userID, productID uint) (bool, error) {
	return s.votes.Exists(userID, productID)
}
