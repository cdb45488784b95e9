package repository

import (
	"sync"

	"github.com/yeetaryan/StackIt/model"
)

// NotificationsRepo holds the notification sequence, newest first.
// Notifications are never removed, only marked read.
type NotificationsRepo struct {
	mu    sync.RWMutex
	items []*model.Notification
}

func GetNotificationsRepo(seed []*model.Notification) *NotificationsRepo {
	return &NotificationsRepo{items: seed}
}

// Insert prepends so the newest notification is always at the head.
func (r *NotificationsRepo) Insert(n *model.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append([]*model.Notification{n}, r.items...)
}

func (r *NotificationsRepo) All() []model.Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Notification, 0, len(r.items))
	for _, n := range r.items {
		out = append(out, *n)
	}
	return out
}

func (r *NotificationsRepo) UnreadCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, n := range r.items {
		if !n.Read {
			count++
		}
	}
	return count
}

func (r *NotificationsRepo) MarkRead(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.items {
		if n.ID == id {
			n.Read = true
			return nil
		}
	}
	return ErrNotFound
}

func (r *NotificationsRepo) MarkAllRead() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.items {
		n.Read = true
	}
}
