package server

// Server объединяет HTTP-серверы отдельных сущностей: классификацию чисел и
// служебные эндпоинты.
type Server struct {
	NumberServer
	MetaServer
}

func NewServer(
	numberServer NumberServer,
	metaServer MetaServer,
) Server {
	return Server{
		NumberServer: numberServer,
		MetaServer:   metaServer,
	}
}
