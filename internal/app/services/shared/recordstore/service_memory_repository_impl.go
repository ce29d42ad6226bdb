package recordstore

import (
	"context"
	"fmt"
	"medipos-service/internal/app/models"
	"medipos-service/internal/pkg/exceptions"
	"time"
)

func (s *Store) CreateService(ctx context.Context, service *models.Service) (string, error) {
	if service == nil || service.PatientID == "" || len(service.Items) == 0 {
		return "", exceptions.ErrMissingRequiredEntityField(fmt.Errorf("service patient id and items are required"))
	}
	if service.ServiceType != models.ServiceTypeLab && service.ServiceType != models.ServiceTypePharmacy {
		return "", exceptions.ErrMissingRequiredEntityField(fmt.Errorf("unknown service type %q", service.ServiceType))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record := cloneService(*service)
	record.ID = s.nextServiceID()
	s.serviceIndex[record.ID] = len(s.services)
	s.services = append(s.services, record)
	return record.ID, nil
}

func (s *Store) FindServiceByID(ctx context.Context, serviceID string) (*models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.serviceIndex[serviceID]
	if !ok {
		return nil, nil
	}
	service := cloneService(s.services[idx])
	return &service, nil
}

func (s *Store) FindServicesByPatientID(ctx context.Context, patientID string) ([]models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var services []models.Service
	for _, svc := range s.services {
		if svc.PatientID == patientID {
			services = append(services, cloneService(svc))
		}
	}
	return services, nil
}

func (s *Store) FindAllServices(ctx context.Context) ([]models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	services := make([]models.Service, 0, len(s.services))
	for _, svc := range s.services {
		services = append(services, cloneService(svc))
	}
	return services, nil
}

func (s *Store) UpdateServiceStatus(ctx context.Context, serviceID string, status models.ServiceStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.serviceIndex[serviceID]
	if !ok {
		return exceptions.ErrServiceNotFound(fmt.Errorf("service %s", serviceID))
	}
	s.services[idx].Status = status
	return nil
}

func (s *Store) MarkServiceCompleted(ctx context.Context, serviceID, completedBy string, completedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.serviceIndex[serviceID]
	if !ok {
		return exceptions.ErrServiceNotFound(fmt.Errorf("service %s", serviceID))
	}
	s.services[idx].Status = models.ServiceStatusCompleted
	s.services[idx].CompletedAt = &completedAt
	s.services[idx].CompletedBy = completedBy
	return nil
}

func (s *Store) MarkServiceDispensed(ctx context.Context, serviceID, dispensedBy string, completedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.serviceIndex[serviceID]
	if !ok {
		return exceptions.ErrServiceNotFound(fmt.Errorf("service %s", serviceID))
	}
	s.services[idx].Status = models.ServiceStatusDispensed
	s.services[idx].CompletedAt = &completedAt
	s.services[idx].DispensedBy = dispensedBy
	return nil
}
