package domain

type TurnUseCase interface {
	Play(table Table, source ThrowSource) (*Turn, error)
}
