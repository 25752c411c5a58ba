package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/inmobiliaria/api-inmobiliaria/internal/dto"
	"github.com/inmobiliaria/api-inmobiliaria/internal/models"
	"github.com/inmobiliaria/api-inmobiliaria/internal/services"
	"github.com/inmobiliaria/api-inmobiliaria/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Agencia{},
		&models.Cliente{},
		&models.Propietario{},
		&models.Inmueble{},
		&models.Visita{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func ptrFloat(f float64) *float64 { return &f }

func ptrInt(i int) *int { return &i }

func ptrBool(b bool) *bool { return &b }

func ptrDate(d models.Date) *models.Date { return &d }

func flexID(v uint64) *types.FlexID {
	f := types.FlexID(v)
	return &f
}

func agenciaIn(nombre string, codigoPostal int, abiertoSabados bool, facturacion float64) dto.AgenciaIn {
	return dto.AgenciaIn{
		Nombre:           nombre,
		Direccion:        "Calle Mayor 1",
		FacturacionAnual: ptrFloat(facturacion),
		CodigoPostal:     ptrInt(codigoPostal),
		AbiertoSabados:   ptrBool(abiertoSabados),
		FechaFundacion:   ptrDate(models.NewDate(time.Now().AddDate(-5, 0, 0))),
	}
}

func propietarioIn(dni, nombre string, esEmpresa bool) dto.PropietarioIn {
	return dto.PropietarioIn{
		Dni:       dni,
		Nombre:    nombre,
		Telefono:  "600111222",
		Comision:  ptrFloat(3.5),
		EsEmpresa: ptrBool(esEmpresa),
		FechaAlta: ptrDate(models.NewDate(time.Now().AddDate(-1, 0, 0))),
	}
}

func clienteIn(email string, presupuesto float64, suscrito bool) dto.ClienteIn {
	return dto.ClienteIn{
		Email:             email,
		Password:          "secret",
		Telefono:          "699888777",
		PresupuestoMaximo: ptrFloat(presupuesto),
		Edad:              ptrInt(35),
		FechaAlta:         ptrDate(models.NewDate(time.Now().AddDate(0, -6, 0))),
		Suscrito:          ptrBool(suscrito),
	}
}

func inmuebleIn(titulo string, precio float64, metros int, ascensor bool, agenciaID, propietarioID uint64) dto.InmuebleIn {
	return dto.InmuebleIn{
		Titulo:           titulo,
		Precio:           ptrFloat(precio),
		Metros:           ptrInt(metros),
		Latitud:          ptrFloat(40.4168),
		Longitud:         ptrFloat(-3.7038),
		Ascensor:         ptrBool(ascensor),
		FechaPublicacion: ptrDate(models.NewDate(time.Now().AddDate(0, -1, 0))),
		AgenciaID:        flexID(agenciaID),
		PropietarioID:    flexID(propietarioID),
	}
}

func visitaIn(fechaHora time.Time, estado string, clienteID, inmuebleID uint64) dto.VisitaIn {
	dt := models.NewDateTime(fechaHora)
	return dto.VisitaIn{
		FechaHora:          &dt,
		Comentarios:        "Visita de prueba",
		Estado:             estado,
		RecordatorioActivo: ptrBool(true),
		ClienteID:          flexID(clienteID),
		InmuebleID:         flexID(inmuebleID),
	}
}

// seedInmueble creates an agency, an owner and a property, returning all ids.
func seedInmueble(t *testing.T, db *gorm.DB) (agenciaID, propietarioID, inmuebleID uint64) {
	agencia, err := services.NewAgenciaService(db).Add(agenciaIn("Pisos Centro", 28001, true, 500000))
	if err != nil {
		t.Fatalf("Failed to seed agency: %v", err)
	}
	propietario, err := services.NewPropietarioService(db).Add(propietarioIn("12345678A", "Carmen Ruiz", false))
	if err != nil {
		t.Fatalf("Failed to seed owner: %v", err)
	}
	inmueble, err := services.NewInmuebleService(db).Add(inmuebleIn("Piso en Malasaña", 240000, 80, true, agencia.ID, propietario.ID))
	if err != nil {
		t.Fatalf("Failed to seed property: %v", err)
	}
	return agencia.ID, propietario.ID, inmueble.ID
}

func TestAgenciaCRUD(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewAgenciaService(db)

	created, err := svc.Add(agenciaIn("Pisos Centro", 28001, true, 500000))
	if err != nil {
		t.Fatalf("Failed to create agency: %v", err)
	}
	if created.ID == 0 {
		t.Error("Expected a generated id")
	}
	if created.Nombre != "Pisos Centro" {
		t.Errorf("Unexpected name: %s", created.Nombre)
	}

	fetched, err := svc.FindByID(created.ID)
	if err != nil {
		t.Fatalf("Failed to fetch agency: %v", err)
	}
	if fetched.CodigoPostal != 28001 {
		t.Errorf("Unexpected postal code: %d", fetched.CodigoPostal)
	}

	updated, err := svc.Modify(created.ID, agenciaIn("Pisos Centro SL", 28002, false, 600000))
	if err != nil {
		t.Fatalf("Failed to modify agency: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("Modify changed the id: %d != %d", updated.ID, created.ID)
	}
	if updated.Nombre != "Pisos Centro SL" || updated.CodigoPostal != 28002 {
		t.Errorf("Modify did not overwrite fields: %+v", updated)
	}

	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("Failed to delete agency: %v", err)
	}
	if _, err := svc.FindByID(created.ID); err == nil {
		t.Error("Expected not-found after delete")
	}
}

func TestAgenciaNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewAgenciaService(db)

	_, err := svc.FindByID(99)
	var nf *types.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Expected NotFoundError, got %v", err)
	}
	if nf.Message != "Agencia no encontrada con ID: 99" {
		t.Errorf("Unexpected message: %q", nf.Message)
	}

	if _, err := svc.Modify(99, agenciaIn("X", 1, true, 1)); !errors.As(err, &nf) {
		t.Errorf("Expected NotFoundError from modify, got %v", err)
	}
	if err := svc.Delete(99); !errors.As(err, &nf) {
		t.Errorf("Expected NotFoundError from delete, got %v", err)
	}
}

func TestAgenciaFiltersCombine(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewAgenciaService(db)

	for _, in := range []dto.AgenciaIn{
		agenciaIn("Inmo Norte", 28001, true, 100000),
		agenciaIn("Inmo Sur", 28001, false, 200000),
		agenciaIn("Fincas Norte", 41001, true, 300000),
	} {
		if _, err := svc.Add(in); err != nil {
			t.Fatalf("Failed to seed agency: %v", err)
		}
	}

	all, err := svc.FindAll(services.AgenciaFilter{})
	if err != nil {
		t.Fatalf("Failed to list agencies: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 agencies, got %d", len(all))
	}

	// Substring match is case-insensitive
	nombre := "norte"
	byName, err := svc.FindAll(services.AgenciaFilter{Nombre: &nombre})
	if err != nil {
		t.Fatalf("Failed to filter by name: %v", err)
	}
	if len(byName) != 2 {
		t.Errorf("Expected 2 agencies matching 'norte', got %d", len(byName))
	}

	cp := 28001
	sabados := true
	both, err := svc.FindAll(services.AgenciaFilter{CodigoPostal: &cp, AbiertoSabados: &sabados})
	if err != nil {
		t.Fatalf("Failed to filter: %v", err)
	}
	if len(both) != 1 || both[0].Nombre != "Inmo Norte" {
		t.Errorf("Expected only 'Inmo Norte', got %+v", both)
	}
}

func TestAgenciaPorFacturacion(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewAgenciaService(db)

	if _, err := svc.Add(agenciaIn("Abre sábados", 28001, true, 900000)); err != nil {
		t.Fatalf("Failed to seed: %v", err)
	}
	if _, err := svc.Add(agenciaIn("Cierra sábados", 28001, false, 900000)); err != nil {
		t.Fatalf("Failed to seed: %v", err)
	}
	if _, err := svc.Add(agenciaIn("Factura poco", 28001, true, 100000)); err != nil {
		t.Fatalf("Failed to seed: %v", err)
	}

	result, err := svc.FindPorFacturacion(500000)
	if err != nil {
		t.Fatalf("Failed to run query: %v", err)
	}
	if len(result) != 1 || result[0].Nombre != "Abre sábados" {
		t.Errorf("Expected only 'Abre sábados', got %+v", result)
	}
}

func TestClienteOutOmitsPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewClienteService(db)

	created, err := svc.Add(clienteIn("ana@example.com", 250000, true))
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	// Password persists but never leaves through the DTO
	var stored models.Cliente
	if err := db.First(&stored, created.ID).Error; err != nil {
		t.Fatalf("Failed to read stored client: %v", err)
	}
	if stored.Password != "secret" {
		t.Errorf("Expected password persisted, got %q", stored.Password)
	}
	if created.Email != "ana@example.com" {
		t.Errorf("Unexpected email: %s", created.Email)
	}
}

func TestClienteVip(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewClienteService(db)

	if _, err := svc.Add(clienteIn("rico@example.com", 900000, true)); err != nil {
		t.Fatalf("Failed to seed: %v", err)
	}
	if _, err := svc.Add(clienteIn("rico-sin-suscribir@example.com", 900000, false)); err != nil {
		t.Fatalf("Failed to seed: %v", err)
	}
	if _, err := svc.Add(clienteIn("modesto@example.com", 100000, true)); err != nil {
		t.Fatalf("Failed to seed: %v", err)
	}

	result, err := svc.FindVip(500000)
	if err != nil {
		t.Fatalf("Failed to run query: %v", err)
	}
	if len(result) != 1 || result[0].Email != "rico@example.com" {
		t.Errorf("Expected only the subscribed high-budget client, got %+v", result)
	}
}

func TestPropietarioEmpresas(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewPropietarioService(db)

	if _, err := svc.Add(propietarioIn("B12345678", "Fincas SA", true)); err != nil {
		t.Fatalf("Failed to seed: %v", err)
	}
	if _, err := svc.Add(propietarioIn("12345678A", "Carmen Ruiz", false)); err != nil {
		t.Fatalf("Failed to seed: %v", err)
	}

	result, err := svc.FindEmpresas()
	if err != nil {
		t.Fatalf("Failed to run query: %v", err)
	}
	if len(result) != 1 || result[0].Nombre != "Fincas SA" {
		t.Errorf("Expected only the company owner, got %+v", result)
	}
}

func TestInmuebleCreateResolvesRefs(t *testing.T) {
	db := setupTestDB(t)
	agenciaID, propietarioID, inmuebleID := seedInmueble(t, db)

	created, err := services.NewInmuebleService(db).FindByID(inmuebleID)
	if err != nil {
		t.Fatalf("Failed to fetch property: %v", err)
	}
	if created.AgenciaID != agenciaID || created.PropietarioID != propietarioID {
		t.Errorf("References not flattened: %+v", created)
	}
}

func TestInmuebleCreateMissingRefPersistsNothing(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewInmuebleService(db)

	agencia, err := services.NewAgenciaService(db).Add(agenciaIn("Pisos Centro", 28001, true, 500000))
	if err != nil {
		t.Fatalf("Failed to seed agency: %v", err)
	}

	_, err = svc.Add(inmuebleIn("Piso fantasma", 100000, 50, false, agencia.ID, 42))
	var nf *types.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Expected NotFoundError, got %v", err)
	}
	if nf.Message != "El propietario con ID 42 no existe" {
		t.Errorf("Unexpected message: %q", nf.Message)
	}

	var count int64
	db.Model(&models.Inmueble{}).Count(&count)
	if count != 0 {
		t.Errorf("Expected no properties persisted, found %d", count)
	}
}

func TestInmuebleFilters(t *testing.T) {
	db := setupTestDB(t)
	agenciaID, propietarioID, _ := seedInmueble(t, db)
	svc := services.NewInmuebleService(db)

	if _, err := svc.Add(inmuebleIn("Ático caro", 500000, 120, true, agenciaID, propietarioID)); err != nil {
		t.Fatalf("Failed to seed: %v", err)
	}
	if _, err := svc.Add(inmuebleIn("Estudio sin ascensor", 90000, 35, false, agenciaID, propietarioID)); err != nil {
		t.Fatalf("Failed to seed: %v", err)
	}

	precioMax := 250000.0
	metrosMin := 70
	ascensor := true
	result, err := svc.FindAll(services.InmuebleFilter{
		PrecioMax: &precioMax,
		MetrosMin: &metrosMin,
		Ascensor:  &ascensor,
	})
	if err != nil {
		t.Fatalf("Failed to filter: %v", err)
	}
	if len(result) != 1 || result[0].Titulo != "Piso en Malasaña" {
		t.Errorf("Expected only the seeded flat, got %+v", result)
	}
}

func TestInmuebleRangoPrecio(t *testing.T) {
	db := setupTestDB(t)
	agenciaID, propietarioID, _ := seedInmueble(t, db) // 240000
	svc := services.NewInmuebleService(db)

	if _, err := svc.Add(inmuebleIn("Barato", 90000, 40, false, agenciaID, propietarioID)); err != nil {
		t.Fatalf("Failed to seed: %v", err)
	}
	if _, err := svc.Add(inmuebleIn("Caro", 800000, 200, true, agenciaID, propietarioID)); err != nil {
		t.Fatalf("Failed to seed: %v", err)
	}

	// Bounds are inclusive
	result, err := svc.FindRangoPrecio(90000, 240000)
	if err != nil {
		t.Fatalf("Failed to run query: %v", err)
	}
	if len(result) != 2 {
		t.Errorf("Expected 2 properties in range, got %d", len(result))
	}
}

func TestVisitaCreateDefaultsEstado(t *testing.T) {
	db := setupTestDB(t)
	_, _, inmuebleID := seedInmueble(t, db)

	cliente, err := services.NewClienteService(db).Add(clienteIn("ana@example.com", 250000, true))
	if err != nil {
		t.Fatalf("Failed to seed client: %v", err)
	}

	created, err := services.NewVisitaService(db).Add(visitaIn(time.Now().AddDate(0, 0, 7), "", cliente.ID, inmuebleID))
	if err != nil {
		t.Fatalf("Failed to create visit: %v", err)
	}
	if created.Estado != models.VisitaPendiente {
		t.Errorf("Expected default state PENDIENTE, got %q", created.Estado)
	}
	if created.ClienteID != cliente.ID || created.InmuebleID != inmuebleID {
		t.Errorf("References not flattened: %+v", created)
	}
}

func TestVisitaCreateMissingClienteFails(t *testing.T) {
	db := setupTestDB(t)
	_, _, inmuebleID := seedInmueble(t, db)

	_, err := services.NewVisitaService(db).Add(visitaIn(time.Now(), "", 42, inmuebleID))
	var nf *types.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Expected NotFoundError, got %v", err)
	}
	if nf.Message != "El cliente con ID 42 no existe" {
		t.Errorf("Unexpected message: %q", nf.Message)
	}

	var count int64
	db.Model(&models.Visita{}).Count(&count)
	if count != 0 {
		t.Errorf("Expected no visits persisted, found %d", count)
	}
}

func TestVisitaFiltersAndPasadas(t *testing.T) {
	db := setupTestDB(t)
	_, _, inmuebleID := seedInmueble(t, db)
	cliente, err := services.NewClienteService(db).Add(clienteIn("ana@example.com", 250000, true))
	if err != nil {
		t.Fatalf("Failed to seed client: %v", err)
	}
	svc := services.NewVisitaService(db)

	past := visitaIn(time.Now().AddDate(0, 0, -3), models.VisitaConfirmada, cliente.ID, inmuebleID)
	past.Valoracion = ptrFloat(4.5)
	if _, err := svc.Add(past); err != nil {
		t.Fatalf("Failed to seed past visit: %v", err)
	}
	if _, err := svc.Add(visitaIn(time.Now().AddDate(0, 0, 3), models.VisitaPendiente, cliente.ID, inmuebleID)); err != nil {
		t.Fatalf("Failed to seed future visit: %v", err)
	}

	estado := models.VisitaConfirmada
	byEstado, err := svc.FindAll(services.VisitaFilter{Estado: &estado})
	if err != nil {
		t.Fatalf("Failed to filter: %v", err)
	}
	if len(byEstado) != 1 || byEstado[0].Estado != models.VisitaConfirmada {
		t.Errorf("Expected one confirmed visit, got %+v", byEstado)
	}

	valoracionMin := 4.0
	byValoracion, err := svc.FindAll(services.VisitaFilter{ValoracionMin: &valoracionMin})
	if err != nil {
		t.Fatalf("Failed to filter: %v", err)
	}
	if len(byValoracion) != 1 {
		t.Errorf("Expected one rated visit, got %d", len(byValoracion))
	}

	pasadas, err := svc.FindPasadas()
	if err != nil {
		t.Fatalf("Failed to run query: %v", err)
	}
	if len(pasadas) != 1 || pasadas[0].Estado != models.VisitaConfirmada {
		t.Errorf("Expected only the past visit, got %+v", pasadas)
	}
}
