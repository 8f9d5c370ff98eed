package service

import (
	"donorhub.app/api/core/config"
	"donorhub.app/api/internal/notify"
	"donorhub.app/api/internal/storage"
)

type Services struct {
	stores        StoreProvider
	txRunner      TxRunner
	attachments   AttachmentService
	notifications NotificationService
	publisher     notify.Publisher
	chatPrefix    string
}

func NewServices(stores StoreProvider, txRunner TxRunner, objects storage.ObjectStorage, publisher notify.Publisher, cfg config.Config) *Services {
	return &Services{
		stores:        stores,
		txRunner:      txRunner,
		attachments:   NewAttachmentService(stores, objects, cfg.Storage.UploadParallels, cfg.Storage.MaxUploadBytes),
		notifications: NewNotificationService(stores, publisher, cfg.Notification.ChannelPrefix),
		publisher:     publisher,
		chatPrefix:    cfg.Notification.ChatChannelPrefix,
	}
}

func (s *Services) Users() UserService {
	return NewUserService(s.stores.Users())
}

func (s *Services) OrganizationRequests() OrganizationRequestService {
	return NewOrganizationRequestService(s.stores, s.txRunner, s.attachments, s.notifications)
}

func (s *Services) Organizations() OrganizationService {
	return NewOrganizationService(s.stores, s.txRunner, s.attachments)
}

func (s *Services) Transactions() TransactionService {
	return NewTransactionService(s.stores, s.txRunner, s.attachments, s.notifications)
}

func (s *Services) Activities() ActivityService {
	return NewActivityService(s.stores, s.txRunner, s.attachments)
}

func (s *Services) Events() EventService {
	return NewEventService(s.stores, s.txRunner, s.attachments)
}

func (s *Services) Chats() ChatService {
	return NewChatService(s.stores, s.publisher, s.chatPrefix)
}

// Notifications is shared so shutdown can wait for in-flight deliveries.
func (s *Services) Notifications() NotificationService {
	return s.notifications
}
