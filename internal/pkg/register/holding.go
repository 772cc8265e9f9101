package register

// holdingSpecs is the fixed decode table for the holding register bank,
// transcribed from the device documentation.
var holdingSpecs = map[uint16]Spec{
	0:   {"device_type_code", UnsignedWord, Unit},
	1:   {"inverter_module_h", DoubleWordHigh, Unit},
	2:   {"inverter_module_l", DoubleWordLow, Unit},
	3:   {"num_mppt_and_num_phases", UnsignedWord, Unit},
	4:   {"holding_reg_004", UnsignedWord, Unit},
	5:   {"holding_reg_005", UnsignedWord, Unit},
	6:   {"holding_reg_006", UnsignedWord, Unit},
	7:   {"enable_ammeter", Bool, Unit},
	8:   {"first_battery_serial_number_1_2", Ascii, Unit},
	9:   {"first_battery_serial_number_3_4", Ascii, Unit},
	10:  {"first_battery_serial_number_5_6", Ascii, Unit},
	11:  {"first_battery_serial_number_7_8", Ascii, Unit},
	12:  {"first_battery_serial_number_9_10", Ascii, Unit},
	13:  {"inverter_serial_number_1_2", Ascii, Unit},
	14:  {"inverter_serial_number_3_4", Ascii, Unit},
	15:  {"inverter_serial_number_5_6", Ascii, Unit},
	16:  {"inverter_serial_number_7_8", Ascii, Unit},
	17:  {"inverter_serial_number_9_10", Ascii, Unit},
	18:  {"first_battery_bms_firmware_version", UnsignedWord, Unit},
	19:  {"dsp_firmware_version", UnsignedWord, Unit},
	20:  {"enable_charge_target", Bool, Unit},
	21:  {"arm_firmware_version", UnsignedWord, Unit},
	22:  {"usb_device_inserted", UnsignedWord, Unit},
	23:  {"select_arm_chip", Bool, Unit},
	24:  {"variable_address", UnsignedWord, Unit},
	25:  {"variable_value", SignedWord, Unit},
	26:  {"p_grid_port_max_output", UnsignedWord, Unit},
	27:  {"battery_power_mode", UnsignedWord, Unit},
	28:  {"enable_60hz_freq_mode", Bool, Unit},
	29:  {"soc_force_adjust", UnsignedWord, Unit},
	30:  {"inverter_modbus_address", UnsignedWord, Unit},
	31:  {"charge_slot_2_start", UnsignedWord, Unit},
	32:  {"charge_slot_2_end", UnsignedWord, Unit},
	33:  {"user_code", UnsignedWord, Unit},
	34:  {"modbus_version", UnsignedWord, Centi},
	35:  {"system_time_year", UnsignedWord, Unit},
	36:  {"system_time_month", UnsignedWord, Unit},
	37:  {"system_time_day", UnsignedWord, Unit},
	38:  {"system_time_hour", UnsignedWord, Unit},
	39:  {"system_time_minute", UnsignedWord, Unit},
	40:  {"system_time_second", UnsignedWord, Unit},
	41:  {"enable_drm_rj45_port", Bool, Unit},
	42:  {"ct_adjust", UnsignedWord, Unit},
	43:  {"charge_and_discharge_soc", UnsignedWord, Unit},
	44:  {"discharge_slot_2_start", UnsignedWord, Unit},
	45:  {"discharge_slot_2_end", UnsignedWord, Unit},
	46:  {"bms_version", UnsignedWord, Unit},
	47:  {"meter_type", UnsignedWord, Unit},
	48:  {"reverse_115_meter_direct", Bool, Unit},
	49:  {"reverse_418_meter_direct", Bool, Unit},
	50:  {"active_power_rate", UnsignedWord, Unit},
	51:  {"reactive_power_rate", UnsignedWord, Unit},
	52:  {"power_factor", UnsignedWord, Unit},
	53:  {"inverter_state", UnsignedWord, Unit},
	54:  {"battery_type", UnsignedWord, Unit},
	55:  {"battery_nominal_capacity", UnsignedWord, Unit},
	56:  {"discharge_slot_1_start", UnsignedWord, Unit},
	57:  {"discharge_slot_1_end", UnsignedWord, Unit},
	58:  {"enable_auto_judge_battery_type", Bool, Unit},
	59:  {"enable_discharge", Bool, Unit},
	60:  {"v_pv_input_start", UnsignedWord, Deci},
	61:  {"inverter_start_time", UnsignedWord, Unit},
	62:  {"inverter_restart_delay_time", UnsignedWord, Unit},
	63:  {"v_ac_low_out", UnsignedWord, Deci},
	64:  {"v_ac_high_out", UnsignedWord, Deci},
	65:  {"f_ac_low_out", UnsignedWord, Centi},
	66:  {"f_ac_high_out", UnsignedWord, Centi},
	67:  {"v_ac_low_out_time", UnsignedWord, Unit},
	68:  {"v_ac_high_out_time", UnsignedWord, Unit},
	69:  {"f_ac_low_out_time", UnsignedWord, Unit},
	70:  {"f_ac_high_out_time", UnsignedWord, Unit},
	71:  {"v_ac_low_in", UnsignedWord, Deci},
	72:  {"v_ac_high_in", UnsignedWord, Deci},
	73:  {"f_ac_low_in", UnsignedWord, Centi},
	74:  {"f_ac_high_in", UnsignedWord, Centi},
	75:  {"v_ac_low_in_time", UnsignedWord, Unit},
	76:  {"v_ac_high_in_time", UnsignedWord, Unit},
	77:  {"f_ac_low_in_time", UnsignedWord, Unit},
	78:  {"f_ac_high_in_time", UnsignedWord, Unit},
	79:  {"v_ac_low_c", UnsignedWord, Deci},
	80:  {"v_ac_high_c", UnsignedWord, Deci},
	81:  {"f_ac_low_c", UnsignedWord, Centi},
	82:  {"f_ac_high_c", UnsignedWord, Centi},
	83:  {"gfci_1_i", UnsignedWord, Deci},
	84:  {"gfci_1_time", UnsignedWord, Unit},
	85:  {"gfci_2_i", UnsignedWord, Deci},
	86:  {"gfci_2_time", UnsignedWord, Unit},
	87:  {"dci_1_i", UnsignedWord, Centi},
	88:  {"dci_1_time", UnsignedWord, Unit},
	89:  {"dci_2_i", UnsignedWord, Centi},
	90:  {"dci_2_time", UnsignedWord, Unit},
	91:  {"holding_reg_091", UnsignedWord, Unit},
	92:  {"holding_reg_092", UnsignedWord, Unit},
	93:  {"holding_reg_093", UnsignedWord, Unit},
	94:  {"charge_slot_1_start", UnsignedWord, Unit},
	95:  {"charge_slot_1_end", UnsignedWord, Unit},
	96:  {"enable_charge", Bool, Unit},
	97:  {"v_battery_under_protection_limit", UnsignedWord, Centi},
	98:  {"v_battery_over_protection_limit", UnsignedWord, Centi},
	99:  {"pv1_voltage_adjust", UnsignedWord, Deci},
	100: {"pv2_voltage_adjust", UnsignedWord, Deci},
	101: {"grid_r_voltage_adjust", UnsignedWord, Deci},
	102: {"grid_s_voltage_adjust", UnsignedWord, Deci},
	103: {"grid_t_voltage_adjust", UnsignedWord, Deci},
	104: {"grid_power_adjust", SignedWord, Unit},
	105: {"battery_voltage_adjust", UnsignedWord, Deci},
	106: {"pv1_power_adjust", SignedWord, Unit},
	107: {"pv2_power_adjust", SignedWord, Unit},
	108: {"battery_low_force_charge_time", UnsignedWord, Unit},
	109: {"enable_bms_read", Bool, Unit},
	110: {"battery_soc_reserve", UnsignedWord, Unit},
	111: {"battery_charge_limit", UnsignedWord, Unit},
	112: {"battery_discharge_limit", UnsignedWord, Unit},
	113: {"island_check_continue", UnsignedWord, Unit},
	114: {"charge_target_soc", UnsignedWord, Unit},
	115: {"charge_soc_stop_2", UnsignedWord, Unit},
	116: {"battery_discharge_min_power_reserve", UnsignedWord, Unit},
	117: {"discharge_soc_stop_2", UnsignedWord, Unit},
	118: {"charge_soc_stop_1", UnsignedWord, Unit},
	119: {"discharge_soc_stop_1", UnsignedWord, Unit},
	120: {"local_control_mode", UnsignedWord, Unit},
	121: {"battery_pause_mode", UnsignedWord, Unit},
}
