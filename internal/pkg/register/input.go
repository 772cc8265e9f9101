package register

import "fmt"

// inputSpecs is the fixed decode table for the input register bank. Offsets
// 60 and up belong to the battery BMS block, which the device exposes through
// the same bank on subordinate addresses.
var inputSpecs = map[uint16]Spec{
	0:  {"inverter_status", UnsignedWord, Unit},
	1:  {"v_pv1", UnsignedWord, Deci},
	2:  {"v_pv2", UnsignedWord, Deci},
	3:  {"v_p_bus", UnsignedWord, Deci},
	4:  {"v_n_bus", UnsignedWord, Deci},
	5:  {"v_ac1", UnsignedWord, Deci},
	6:  {"e_battery_throughput_total_h", DoubleWordHigh, Deci},
	7:  {"e_battery_throughput_total_l", DoubleWordLow, Deci},
	8:  {"i_pv1", UnsignedWord, Centi},
	9:  {"i_pv2", UnsignedWord, Centi},
	10: {"i_ac1", UnsignedWord, Centi},
	11: {"e_pv_total_h", DoubleWordHigh, Deci},
	12: {"e_pv_total_l", DoubleWordLow, Deci},
	13: {"f_ac1", UnsignedWord, Centi},
	14: {"charge_status", UnsignedWord, Unit},
	15: {"v_highbrigh_bus", UnsignedWord, Deci},
	16: {"pf_inverter_output", UnsignedWord, Unit},
	17: {"e_pv1_day", UnsignedWord, Deci},
	18: {"p_pv1", UnsignedWord, Unit},
	19: {"e_pv2_day", UnsignedWord, Deci},
	20: {"p_pv2", UnsignedWord, Unit},
	21: {"e_grid_export_day_h", DoubleWordHigh, Deci},
	22: {"e_grid_export_day_l", DoubleWordLow, Deci},
	23: {"e_solar_diverter", UnsignedWord, Deci},
	24: {"p_inverter_output", SignedWord, Unit},
	25: {"e_grid_out_day", UnsignedWord, Deci},
	26: {"e_grid_in_day", UnsignedWord, Deci},
	27: {"e_inverter_in_total_h", DoubleWordHigh, Deci},
	28: {"e_inverter_in_total_l", DoubleWordLow, Deci},
	29: {"e_discharge_year", UnsignedWord, Deci},
	30: {"p_grid_output", SignedWord, Unit},
	31: {"p_eps_backup", UnsignedWord, Unit},
	32: {"e_grid_import_total_h", DoubleWordHigh, Deci},
	33: {"e_grid_import_total_l", DoubleWordLow, Deci},
	34: {"input_reg_034", UnsignedWord, Unit},
	35: {"e_inverter_charge_day", UnsignedWord, Deci},
	36: {"e_battery_charge_day", UnsignedWord, Deci},
	37: {"e_battery_discharge_day", UnsignedWord, Deci},
	38: {"inverter_countdown", UnsignedWord, Unit},
	39: {"fault_code_h", UnsignedWord, Unit},
	40: {"fault_code_l", UnsignedWord, Unit},
	41: {"temp_inverter_heatsink", UnsignedWord, Deci},
	42: {"p_load_demand", SignedWord, Unit},
	43: {"p_grid_apparent", UnsignedWord, Unit},
	44: {"e_generated_day", UnsignedWord, Deci},
	45: {"e_generated_total_h", DoubleWordHigh, Deci},
	46: {"e_generated_total_l", DoubleWordLow, Deci},
	47: {"work_time_total_h", DoubleWordHigh, Unit},
	48: {"work_time_total_l", DoubleWordLow, Unit},
	49: {"system_mode", UnsignedWord, Unit},
	50: {"v_battery", UnsignedWord, Centi},
	51: {"i_battery", SignedWord, Centi},
	52: {"p_battery", SignedWord, Unit},
	53: {"v_eps", UnsignedWord, Deci},
	54: {"f_eps", UnsignedWord, Centi},
	55: {"temp_charger", UnsignedWord, Deci},
	56: {"temp_battery", UnsignedWord, Deci},
	57: {"charger_warning_code", UnsignedWord, Unit},
	58: {"i_grid_port", UnsignedWord, Centi},
	59: {"battery_percent", UnsignedWord, Unit},

	76: {"temp_battery_cells_1", UnsignedWord, Deci},
	77: {"temp_battery_cells_2", UnsignedWord, Deci},
	78: {"temp_battery_cells_3", UnsignedWord, Deci},
	79: {"temp_battery_cells_4", UnsignedWord, Deci},
	80: {"v_battery_cells_sum", UnsignedWord, Centi},
	81: {"temp_bms_mos", UnsignedWord, Deci},
	82: {"input_reg_082", UnsignedWord, Unit},
	83: {"v_battery_out", UnsignedWord, Centi},
	84: {"full_capacity_h", DoubleWordHigh, Centi},
	85: {"full_capacity_l", DoubleWordLow, Centi},
	86: {"design_capacity_h", DoubleWordHigh, Centi},
	87: {"design_capacity_l", DoubleWordLow, Centi},
	88: {"remaining_capacity_h", DoubleWordHigh, Centi},
	89: {"remaining_capacity_l", DoubleWordLow, Centi},
	90: {"input_reg_090", UnsignedWord, Unit},
	91: {"battery_status_1_2", UnsignedWord, Unit},
	92: {"battery_status_3_4", UnsignedWord, Unit},
	93: {"battery_status_5_6", UnsignedWord, Unit},
	94: {"battery_status_7", UnsignedWord, Unit},
	95: {"battery_warning_1_2", UnsignedWord, Unit},
	96: {"battery_cycles", UnsignedWord, Unit},
	97: {"input_reg_097", UnsignedWord, Unit},
	98: {"bms_firmware_version", UnsignedWord, Unit},
	99: {"input_reg_099", UnsignedWord, Unit},

	100: {"battery_soc", UnsignedWord, Unit},
	101: {"input_reg_101", UnsignedWord, Unit},
	102: {"battery_design_capacity_2", UnsignedWord, Centi},
	103: {"temp_battery_max", UnsignedWord, Deci},
	104: {"temp_battery_min", UnsignedWord, Deci},
	105: {"e_battery_charge_day_2", UnsignedWord, Deci},
	106: {"e_battery_discharge_day_2", UnsignedWord, Deci},
	107: {"input_reg_107", UnsignedWord, Unit},
	108: {"input_reg_108", UnsignedWord, Unit},
	109: {"input_reg_109", UnsignedWord, Unit},
	110: {"battery_serial_number_1_2", Ascii, Unit},
	111: {"battery_serial_number_3_4", Ascii, Unit},
	112: {"battery_serial_number_5_6", Ascii, Unit},
	113: {"battery_serial_number_7_8", Ascii, Unit},
	114: {"battery_serial_number_9_10", Ascii, Unit},
	115: {"battery_usb_device_inserted", UnsignedWord, Unit},
	116: {"input_reg_116", UnsignedWord, Unit},
	117: {"input_reg_117", UnsignedWord, Unit},
	118: {"input_reg_118", UnsignedWord, Unit},
	119: {"input_reg_119", UnsignedWord, Unit},

	180: {"e_battery_discharge_total", UnsignedWord, Deci},
	181: {"e_battery_charge_total", UnsignedWord, Deci},
	182: {"e_battery_discharge_day_3", UnsignedWord, Deci},
	183: {"e_battery_charge_day_3", UnsignedWord, Deci},
}

func init() {
	// battery cell voltages, IR(60) through IR(75)
	for off := uint16(60); off <= 75; off++ {
		inputSpecs[off] = Spec{fmt.Sprintf("v_battery_cell_%02d", off-59), UnsignedWord, Centi}
	}
	// reserved block between the BMS pages; readable, always reported raw
	for off := uint16(120); off <= 179; off++ {
		inputSpecs[off] = Spec{fmt.Sprintf("input_reg_%03d", off), UnsignedWord, Unit}
	}
}
