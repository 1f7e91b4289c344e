package domain

type FeedPublisher interface {
	Publish(msg Message)
}

type HubUseCase interface {
	FeedPublisher
	Subscribe() (string, <-chan Message)
	Unsubscribe(id string)
	Subscribers() int
	Close()
}
