package grpchealth

import (
	"fmt"
	"net"

	"dispatch/pkg/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName имя сервиса в ответах grpc.health.v1.
const ServiceName = "dispatch"

// Server отдает статус процесса по протоколу grpc.health.v1 для оркестратора.
type Server struct {
	log    logger.Logger
	port   string
	server *grpc.Server
	health *health.Server
}

func New(log logger.Logger, port string) *Server {
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	return &Server{
		log:    log.With(logger.NewField("component", "grpc_health")),
		port:   port,
		server: grpcServer,
		health: healthServer,
	}
}

// Serve блокируется до Stop.
func (s *Server) Serve() error {
	lis, err := net.Listen("tcp", ":"+s.port)
	if err != nil {
		return fmt.Errorf("listen grpc health port %s: %w", s.port, err)
	}
	s.log.Info("grpc health server starting", logger.NewField("port", s.port))
	return s.ServeListener(lis)
}

func (s *Server) ServeListener(lis net.Listener) error {
	if err := s.server.Serve(lis); err != nil {
		return fmt.Errorf("grpc health server: %w", err)
	}
	return nil
}

// Health сервер статусов, нужен для проверок без сети.
func (s *Server) Health() *health.Server {
	return s.health
}

// Drain переводит все сервисы в NOT_SERVING, соединения остаются открытыми.
func (s *Server) Drain() {
	s.health.Shutdown()
	s.log.Info("grpc health switched to NOT_SERVING")
}

func (s *Server) Stop() {
	s.health.Shutdown()
	s.server.GracefulStop()
}
