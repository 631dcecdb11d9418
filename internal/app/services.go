package app

import "fitdiary/internal/domain"

// Services bundles every view service over one State.
type Services struct {
	Dashboard *DashboardService
	Calendar  *CalendarService
	Diary     *DiaryService
	Water     *WaterService
	Meals     *MealService
	Routine   *RoutineService
	Training  *TrainingService
	Profile   *ProfileService
	Targets   *TargetsService
	Metrics   *MetricsService
	Charts    *ChartsService
}

// NewServices wires every service to state.
func NewServices(state *State, clock domain.Clock) *Services {
	return &Services{
		Dashboard: NewDashboardService(state, clock),
		Calendar:  NewCalendarService(state.Diary, state.Training, clock),
		Diary:     NewDiaryService(state.Diary, state.Targets, clock),
		Water:     NewWaterService(state.Diary, state.Targets, clock),
		Meals:     NewMealService(state.Meals),
		Routine:   NewRoutineService(state.Routine),
		Training:  NewTrainingService(state.Routine, state.Training, clock),
		Profile:   NewProfileService(state.Profile),
		Targets:   NewTargetsService(state.Targets),
		Metrics:   NewMetricsService(state.Metrics, clock),
		Charts:    NewChartsService(state.Diary, state.Metrics, clock),
	}
}
