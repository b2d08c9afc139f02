package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/zemenlab/go-ethiopic/ethiopic"
	"github.com/zemenlab/go-ethiopic/internal/config"
)

// dateDTO is the wire form of an ethiopic.Date.
type dateDTO struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

func toDTO(d ethiopic.Date) dateDTO {
	return dateDTO{Year: d.Year, Month: d.Month, Day: d.Day}
}

type conversionResponse struct {
	Ethiopic  dateDTO `json:"ethiopic"`
	Gregorian dateDTO `json:"gregorian"`
	Era       string  `json:"era"`
}

type validationResponse struct {
	Valid bool `json:"valid"`
}

type dayOfWeekResponse struct {
	JDN     int64  `json:"jdn"`
	Weekday int    `json:"weekday"`
	Name    string `json:"name"`
}

type todayResponse struct {
	Gregorian dateDTO `json:"gregorian"`
	Ethiopic  dateDTO `json:"ethiopic"`
	Era       string  `json:"era"`
	Weekday   int     `json:"weekday"`
	Name      string  `json:"name"`
}

// errorResponse is the JSON error envelope. Error is a stable code
// (config.ErrCodeInvalidInput or config.ErrCodeInvalidDate); Message is
// human-readable detail.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(config.HeaderContentType, config.MimeJSON)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeInputError reports an input-shape failure. The conversion core was
// never invoked.
func writeInputError(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Error:   config.ErrCodeInvalidInput,
		Message: msg,
	})
}

// writeDateError reports a calendar-validity failure from the core.
func writeDateError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
		Error:   config.ErrCodeInvalidDate,
		Message: err.Error(),
	})
}

// intParam extracts a required integer query parameter. A missing or
// non-integer value is an input-shape error, reported before any core logic
// runs.
func intParam(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("%s: %q", config.ErrMissingParam, name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %q", config.ErrNotAnInteger, name)
	}
	return v, nil
}

// dateParams extracts the year/month/day triple common to all date endpoints.
func dateParams(r *http.Request) (year, month, day int, err error) {
	if year, err = intParam(r, config.ParamYear); err != nil {
		return 0, 0, 0, err
	}
	if month, err = intParam(r, config.ParamMonth); err != nil {
		return 0, 0, 0, err
	}
	if day, err = intParam(r, config.ParamDay); err != nil {
		return 0, 0, 0, err
	}
	return year, month, day, nil
}

func eraName(era ethiopic.Era) string {
	if era == ethiopic.JDEpochOffsetAmeteAlem {
		return config.EraParamAmeteAlem
	}
	return config.EraParamAmeteMihret
}

func (s *ConversionServer) handleEthiopicToGregorian(w http.ResponseWriter, r *http.Request) {
	year, month, day, err := dateParams(r)
	if err != nil {
		s.metrics.Conversions.WithLabelValues(dirEthToGreg, outcomeInvalidInput).Inc()
		writeInputError(w, err.Error())
		return
	}

	var (
		greg    ethiopic.Date
		convErr error
		era     ethiopic.Era
	)
	switch r.URL.Query().Get(config.ParamEra) {
	case "":
		// Era omitted: auto-detect from the tentative Amete Mihret JDN.
		era = ethiopic.GuessEra(ethiopic.EthiopicToJDN(year, month, day, ethiopic.JDEpochOffsetAmeteMihret))
		greg, convErr = ethiopic.EthiopicToGregorian(year, month, day)
	case config.EraParamAmeteMihret:
		era = ethiopic.JDEpochOffsetAmeteMihret
		greg, convErr = ethiopic.EthiopicToGregorianInEra(year, month, day, era)
	case config.EraParamAmeteAlem:
		era = ethiopic.JDEpochOffsetAmeteAlem
		greg, convErr = ethiopic.EthiopicToGregorianInEra(year, month, day, era)
	default:
		s.metrics.Conversions.WithLabelValues(dirEthToGreg, outcomeInvalidInput).Inc()
		writeInputError(w, config.ErrUnknownEra)
		return
	}

	if convErr != nil {
		s.metrics.Conversions.WithLabelValues(dirEthToGreg, outcomeInvalidDate).Inc()
		writeDateError(w, convErr)
		return
	}

	s.metrics.Conversions.WithLabelValues(dirEthToGreg, outcomeOK).Inc()
	writeJSON(w, http.StatusOK, conversionResponse{
		Ethiopic:  dateDTO{Year: year, Month: month, Day: day},
		Gregorian: toDTO(greg),
		Era:       eraName(era),
	})
}

func (s *ConversionServer) handleGregorianToEthiopic(w http.ResponseWriter, r *http.Request) {
	year, month, day, err := dateParams(r)
	if err != nil {
		s.metrics.Conversions.WithLabelValues(dirGregToEth, outcomeInvalidInput).Inc()
		writeInputError(w, err.Error())
		return
	}

	eth, convErr := ethiopic.GregorianToEthiopic(year, month, day)
	if convErr != nil {
		s.metrics.Conversions.WithLabelValues(dirGregToEth, outcomeInvalidDate).Inc()
		writeDateError(w, convErr)
		return
	}

	era := ethiopic.GuessEra(ethiopic.GregorianToJDN(year, month, day))

	s.metrics.Conversions.WithLabelValues(dirGregToEth, outcomeOK).Inc()
	writeJSON(w, http.StatusOK, conversionResponse{
		Ethiopic:  toDTO(eth),
		Gregorian: dateDTO{Year: year, Month: month, Day: day},
		Era:       eraName(era),
	})
}

func (s *ConversionServer) handleValidateEthiopic(w http.ResponseWriter, r *http.Request) {
	year, month, day, err := dateParams(r)
	if err != nil {
		writeInputError(w, err.Error())
		return
	}

	valid := ethiopic.IsValidEthiopicDate(year, month, day)
	s.metrics.Validations.WithLabelValues(calendarEthiopic, validationResult(valid)).Inc()
	writeJSON(w, http.StatusOK, validationResponse{Valid: valid})
}

func (s *ConversionServer) handleValidateGregorian(w http.ResponseWriter, r *http.Request) {
	year, month, day, err := dateParams(r)
	if err != nil {
		writeInputError(w, err.Error())
		return
	}

	valid := ethiopic.IsValidGregorianDate(year, month, day)
	s.metrics.Validations.WithLabelValues(calendarGregorian, validationResult(valid)).Inc()
	writeJSON(w, http.StatusOK, validationResponse{Valid: valid})
}

func validationResult(valid bool) string {
	if valid {
		return resultValid
	}
	return resultInvalid
}

// handleDayOfWeek resolves a Gregorian date to its JDN and weekday index
// (0 = Monday). The underlying arithmetic is total, so only input shape is
// checked here.
func (s *ConversionServer) handleDayOfWeek(w http.ResponseWriter, r *http.Request) {
	year, month, day, err := dateParams(r)
	if err != nil {
		writeInputError(w, err.Error())
		return
	}

	jdn := ethiopic.GregorianToJDN(year, month, day)
	weekday := ethiopic.DayOfWeek(jdn)
	writeJSON(w, http.StatusOK, dayOfWeekResponse{
		JDN:     jdn,
		Weekday: weekday,
		Name:    config.WeekdayNames[weekday],
	})
}

// handleToday reports the current date in both calendars.
func (s *ConversionServer) handleToday(w http.ResponseWriter, r *http.Request) {
	now := s.Clock.Now()
	year, month, day := now.Year(), int(now.Month()), now.Day()

	eth, err := ethiopic.GregorianToEthiopic(year, month, day)
	if err != nil {
		// Unreachable with a sane clock; surfaced for completeness.
		writeDateError(w, err)
		return
	}

	jdn := ethiopic.GregorianToJDN(year, month, day)
	weekday := ethiopic.DayOfWeek(jdn)
	writeJSON(w, http.StatusOK, todayResponse{
		Gregorian: dateDTO{Year: year, Month: month, Day: day},
		Ethiopic:  toDTO(eth),
		Era:       eraName(ethiopic.GuessEra(jdn)),
		Weekday:   weekday,
		Name:      config.WeekdayNames[weekday],
	})
}
